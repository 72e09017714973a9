package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kpango/glg"

	"github.com/vasalvit/vectoricon"
	"github.com/vasalvit/vectoricon/pathdata"
)

type Flags struct {
	InputFilePath    string
	Scale            float64
	ShowInstructions bool
	preset           string
	makePreset       bool
}

func main() {
	var f Flags
	flag.StringVar(&f.InputFilePath, "i", "", "input icon file path")
	flag.Float64Var(&f.Scale, "s", 1.0, "scale factor")
	flag.BoolVar(&f.ShowInstructions, "instr", false, "print interpreted drawing instructions instead of commands")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.Parse()

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v", f.preset, err)
		}
		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	if f.InputFilePath == "" {
		flag.Usage()
		os.Exit(1)
	}

	file, err := os.Open(f.InputFilePath)
	if err != nil {
		glg.Fatalf("Cannot open file %s: %v", f.InputFilePath, err)
	}
	defer file.Close()

	icon, err := vectoricon.ParseIconFromReader(file, f.InputFilePath, f.Scale)
	if err != nil {
		glg.Fatalf("Cannot parse icon %s: %v", f.InputFilePath, err)
	}

	vb := icon.ViewBox
	fmt.Printf("ICON %q viewBox %g %g %g %g\n", icon.Title, vb.MinX, vb.MinY, vb.Width, vb.Height)

	if f.ShowInstructions {
		dumpInstructions(icon)
		return
	}
	dumpCommands(icon)
}

func dumpCommands(icon *vectoricon.Icon) {
	for _, p := range icon.Paths() {
		fmt.Printf("PATH %q\n", p.ID)
		cmds, err := p.Commands()
		if err != nil {
			glg.Warnf("skipping path %q: %v", p.ID, err)
			continue
		}
		for _, c := range cmds {
			fmt.Printf("  %s\n", formatCommand(c))
		}
	}
}

func dumpInstructions(icon *vectoricon.Icon) {
	instructions, errs := icon.ParseDrawingInstructions()
	for di := range instructions {
		switch di.Kind {
		case vectoricon.MoveInstruction:
			fmt.Printf("  move  %v\n", *di.M)
		case vectoricon.LineInstruction:
			fmt.Printf("  line  %v\n", *di.M)
		case vectoricon.CurveInstruction:
			fmt.Printf("  curve %v %v %v\n", *di.C1, *di.C2, *di.T)
		case vectoricon.CloseInstruction:
			fmt.Println("  close")
		case vectoricon.PaintInstruction:
			fmt.Printf("  paint stroke=%s width=%g fill=%s\n", *di.Stroke, *di.StrokeWidth, *di.Fill)
		}
	}
	for err := range errs {
		glg.Warnf("instruction stream: %v", err)
	}
}

func formatCommand(c pathdata.Command) string {
	switch c := c.(type) {
	case pathdata.MoveTo:
		return fmt.Sprintf("%s (%g,%g)", relLetter("M", c.Rel), c.P.X, c.P.Y)
	case pathdata.LineTo:
		return fmt.Sprintf("%s (%g,%g)", relLetter("L", c.Rel), c.P.X, c.P.Y)
	case pathdata.HLineTo:
		return fmt.Sprintf("%s %g", relLetter("H", c.Rel), c.X)
	case pathdata.VLineTo:
		return fmt.Sprintf("%s %g", relLetter("V", c.Rel), c.Y)
	case pathdata.CurveTo:
		return fmt.Sprintf("%s (%g,%g) (%g,%g) (%g,%g)", relLetter("C", c.Rel),
			c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.P.X, c.P.Y)
	case pathdata.SmoothCurveTo:
		return fmt.Sprintf("%s (%g,%g) (%g,%g)", relLetter("S", c.Rel), c.C2.X, c.C2.Y, c.P.X, c.P.Y)
	case pathdata.QuadTo:
		return fmt.Sprintf("%s (%g,%g) (%g,%g)", relLetter("Q", c.Rel), c.C.X, c.C.Y, c.P.X, c.P.Y)
	case pathdata.SmoothQuadTo:
		return fmt.Sprintf("%s (%g,%g)", relLetter("T", c.Rel), c.P.X, c.P.Y)
	case pathdata.ArcTo:
		return fmt.Sprintf("%s r(%g,%g) rot %g large %t sweep %t (%g,%g)", relLetter("A", c.Rel),
			c.R.X, c.R.Y, c.XRot, c.LargeArc, c.Sweep, c.P.X, c.P.Y)
	case pathdata.ClosePath:
		return "Z"
	}
	return fmt.Sprintf("unknown command %T", c)
}

func relLetter(letter string, rel bool) string {
	if rel {
		return strings.ToLower(letter)
	}
	return letter
}
