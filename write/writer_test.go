package write

import (
	"bytes"
	"strings"
	"testing"
)

type staticAdder struct {
	iter int
}

func (s *staticAdder) AppendWriteData(v []*Value) []*Value {
	v = append(v, &Value{Heading: "Iter", Value: s.iter})
	v = append(v, &Value{Heading: "F(X)", Value: 0.5})
	return v
}

func TestDisplayLogger(t *testing.T) {
	var buf bytes.Buffer
	adder := &staticAdder{}

	d := NewDisplay()
	d.AddDataAdder(adder)
	if err := d.Init(&WriteSettings{DisplayWriters: []Writer{{Writer: &buf, T: Logger}}}); err != nil {
		t.Fatalf("error initializing display: %v", err)
	}

	for i := 1; i <= 3; i++ {
		adder.iter = i
		if err := d.Iterate(); err != nil {
			t.Fatalf("error writing iteration: %v", err)
		}
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected a heading and 3 rows, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "Iter,F(X)" {
		t.Errorf("unexpected heading row: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,") {
		t.Errorf("unexpected first row: %q", lines[1])
	}
}

func TestDisplayDefaultSilent(t *testing.T) {
	d := NewDisplay()
	d.AddDataAdder(&staticAdder{})
	if err := d.Init(DefaultWriteSettings()); err != nil {
		t.Fatalf("error initializing display: %v", err)
	}
	if err := d.Iterate(); err != nil {
		t.Fatalf("error iterating display: %v", err)
	}
}

func TestDisplayAlignedColumns(t *testing.T) {
	var buf bytes.Buffer
	adder := &staticAdder{iter: 1}

	d := NewDisplay()
	d.AddDataAdder(adder)
	if err := d.Init(&WriteSettings{DisplayWriters: []Writer{{Writer: &buf, T: Displayer}}}); err != nil {
		t.Fatalf("error initializing display: %v", err)
	}
	if err := d.Iterate(); err != nil {
		t.Fatalf("error writing iteration: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Iter") || !strings.Contains(out, "F(X)") {
		t.Errorf("headings missing from display output: %q", out)
	}
	if !strings.Contains(out, "5.000000e-01") {
		t.Errorf("value missing from display output: %q", out)
	}
}
