package write

import (
	"fmt"
	"io"
	"strings"
)

// WriteSettings controls where, if anywhere, iteration data is written
type WriteSettings struct {
	DisplayWriters []Writer // Where the iteration data should be written. Nil writes nothing
}

// DefaultWriteSettings returns settings with no writers. The root finders
// perform no I/O unless a writer is set explicitly
func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{}
}

type Type int

const (
	// Logger is a writer intended to save details of the search for future
	// postprocessing. The data is written as csv, one row per iteration
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the search.
	// An effort is made to align columns, and headings are repeated
	// periodically
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

// headingInterval is the number of value rows printed between repeats of
// the heading row on a Displayer
const headingInterval = 30

// Display writes per-iteration data gathered from its DataAdders to the
// configured writers. Assumption is that headings don't change between
// iterations
type Display struct {
	displayValues []*Value

	headings   []string
	values     []string
	maxLengths []int

	rowsSinceHeading int

	existsDisplayer bool
	existsLogger    bool

	writers    []Writer
	dataAdders []DataAdder
}

func NewDisplay() *Display {
	return &Display{
		rowsSinceHeading: headingInterval + 1,
	}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// accumulateValues gets all of the values from the data adders and stores
// them in the display
func (d *Display) accumulateValues() {
	d.displayValues = d.displayValues[:0]
	for _, add := range d.dataAdders {
		d.displayValues = add.AppendWriteData(d.displayValues)
	}
}

// Init initializes the displays for the writers according to their Type
func (d *Display) Init(w *WriteSettings) error {
	d.writers = w.DisplayWriters
	d.rowsSinceHeading = headingInterval + 1

	if len(d.writers) == 0 {
		return nil
	}
	d.accumulateValues()

	d.headings = d.headings[:0]
	for _, dat := range d.displayValues {
		d.headings = append(d.headings, dat.Heading)
	}

	for _, w := range d.writers {
		switch w.T {
		default:
			panic("display: unknown writer type")
		case Logger:
			d.existsLogger = true
			if err := writeCommaSeparated(w, d.headings); err != nil {
				return err
			}
		case Displayer:
			d.existsDisplayer = true
		}
	}
	return nil
}

// Iterate is the write action performed by the display at every iteration
// of the search, using the writers and dataAdders set during initialization
func (d *Display) Iterate() error {
	if len(d.writers) == 0 {
		return nil
	}

	d.accumulateValues()
	d.values = d.values[:0]
	for _, v := range d.displayValues {
		d.values = append(d.values, valueToString(v.Value))
	}

	displayHeadings := d.rowsSinceHeading > headingInterval
	if displayHeadings {
		d.rowsSinceHeading = 0
	}
	d.rowsSinceHeading++

	if d.existsDisplayer {
		d.maxLengths = d.maxLengths[:0]
		for i, v := range d.values {
			d.maxLengths = append(d.maxLengths, len(v))
			if len(d.headings[i]) > len(v) {
				d.maxLengths[i] = len(d.headings[i])
			}
		}
	}

	for _, w := range d.writers {
		switch w.T {
		default:
			panic("display: unknown writer type")
		case Logger:
			if err := writeCommaSeparated(w, d.values); err != nil {
				return err
			}
		case Displayer:
			if displayHeadings {
				if _, err := w.Write([]byte("\n")); err != nil {
					return err
				}
				if err := writeAlignedStrings(w, d.headings, d.maxLengths); err != nil {
					return err
				}
			}
			if err := writeAlignedStrings(w, d.values, d.maxLengths); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeAlignedStrings(w io.Writer, strs []string, maxLengths []int) error {
	for i, str := range strs {
		s := str + strings.Repeat(" ", maxLengths[i]-len(str)) + "\t"
		if _, err := w.Write([]byte(s)); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func writeCommaSeparated(w io.Writer, values []string) error {
	for i, value := range values {
		if _, err := w.Write([]byte(value)); err != nil {
			return err
		}
		if i != len(values)-1 {
			if _, err := w.Write([]byte(",")); err != nil {
				return err
			}
		}
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func valueToString(v interface{}) string {
	switch v.(type) {
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%e", v)
	case string:
		return fmt.Sprintf("%s", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
