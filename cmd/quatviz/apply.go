package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/olekukonko/tablewriter"
	"github.com/tandukion/quaternion-visualization/orient"
	"github.com/urfave/cli"
)

type edit struct {
	name, value string
}

// parseEdits splits component=value arguments.
func parseEdits(args []string) ([]edit, error) {
	edits := make([]edit, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("malformed edit %q, want component=value", arg)
		}
		edits = append(edits, edit{name: name, value: value})
	}
	return edits, nil
}

// Apply runs a list of edits without any UI.
func Apply(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing edit arguments")
	}
	edits, err := parseEdits(ctx.Args())
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	return runEdits(os.Stdout, newEngine(cfg), edits)
}

// runEdits applies edits in order and writes one table row per state.
// A value that does not parse stops the run.
func runEdits(w io.Writer, engine *orient.Engine, edits []edit) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Edit", "x", "y", "z", "w", "Axis", "Length", "Angle", "Outcome"})
	table.Append(stateRow("initial", engine.Snapshot()))

	var applyErr error
	for _, e := range edits {
		s, err := engine.ApplyString(e.name, e.value)
		if err != nil {
			applyErr = err
			break
		}
		table.Append(stateRow(e.name+"="+e.value, s))
	}

	table.Render()
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	return applyErr
}

func stateRow(label string, s orient.Snapshot) []string {
	return []string{
		label,
		fmt.Sprintf("%.4f", s.Quat.V[0]),
		fmt.Sprintf("%.4f", s.Quat.V[1]),
		fmt.Sprintf("%.4f", s.Quat.V[2]),
		fmt.Sprintf("%.4f", s.Quat.W),
		fmt.Sprintf("(%.3f, %.3f, %.3f)", s.Axis[0], s.Axis[1], s.Axis[2]),
		fmt.Sprintf("%.4f", s.AxisLength),
		fmt.Sprintf("%.2f°", mgl64.RadToDeg(s.RotationAngle())),
		s.Outcome.String(),
	}
}
