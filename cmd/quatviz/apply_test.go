package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tandukion/quaternion-visualization/orient"
)

func TestParseEdits(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		want    []edit
		wantErr bool
	}{
		{"Single", []string{"w=0.5"}, []edit{{"w", "0.5"}}, false},
		{"Several", []string{"w=0.5", "x=-0.2"}, []edit{{"w", "0.5"}, {"x", "-0.2"}}, false},
		{"Missing value", []string{"x="}, nil, true},
		{"Missing separator", []string{"x0.4"}, nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseEdits(tc.args)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseEdits() error = %v, wantErr %v", err, tc.wantErr)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("parseEdits() = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("parseEdits()[%d] = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestRunEdits(t *testing.T) {
	var out bytes.Buffer
	engine := orient.New()
	err := runEdits(&out, engine, []edit{{"w", "0.5"}, {"x", "0.4"}})
	if err != nil {
		t.Fatalf("runEdits() = %v", err)
	}

	text := out.String()
	for _, want := range []string{"initial", "w=0.5", "x=0.4", "0.4000", "0.5000", "120.00°", "applied"} {
		if !strings.Contains(text, want) {
			t.Errorf("output is missing %q:\n%s", want, text)
		}
	}
	if s := engine.Snapshot(); s.Quat.V[0] != 0.4 {
		t.Errorf("x = %v, want 0.4", s.Quat.V[0])
	}
}

func TestRunEditsStopsOnBadValue(t *testing.T) {
	var out bytes.Buffer
	engine := orient.New()
	err := runEdits(&out, engine, []edit{{"w", "abc"}, {"w", "0.5"}})
	if !errors.Is(err, orient.ErrInvalidValue) {
		t.Fatalf("runEdits() = %v, want %v", err, orient.ErrInvalidValue)
	}
	if engine.Snapshot().Quat.W != 1 {
		t.Errorf("edits after the bad one were applied")
	}
	if !strings.Contains(out.String(), "initial") {
		t.Errorf("table not written on error")
	}
}
