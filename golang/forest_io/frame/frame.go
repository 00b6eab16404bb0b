// Package frame is a small tabular dataframe: named, ordered, single-dimensional columns.
// Numeric columns share one gonum matrix, categorical columns are string slices.
package frame

import (
	"errors"
	"fmt"

	"github.com/tarstars/forest_io/golang/forest_io/unroll"
	"gonum.org/v1/gonum/mat"
)

//Frame is a table of named columns of equal length.
type Frame struct {
	names       []string
	numeric     map[string]int
	data        *mat.Dense
	categorical map[string][]string
	rows        int
}

//New creates a frame whose numeric columns are the columns of data. data may be nil for a
//frame that only holds categorical columns.
func New(names []string, data *mat.Dense) (*Frame, error) {
	frame := &Frame{numeric: make(map[string]int), categorical: make(map[string][]string)}
	if data == nil {
		if len(names) != 0 {
			return nil, errors.New("numeric column names without data")
		}
		return frame, nil
	}

	rows, cols := data.Dims()
	if cols != len(names) {
		return nil, fmt.Errorf("%d column names for %d numeric columns", len(names), cols)
	}
	for ind, name := range names {
		if _, ok := frame.numeric[name]; ok {
			return nil, fmt.Errorf("duplicated column %q", name)
		}
		frame.numeric[name] = ind
	}
	frame.names = append(frame.names, names...)
	frame.data = data
	frame.rows = rows
	return frame, nil
}

//AddCategorical appends a string column.
func (frame *Frame) AddCategorical(name string, values []string) error {
	if frame.has(name) {
		return fmt.Errorf("duplicated column %q", name)
	}
	if len(frame.names) != 0 && len(values) != frame.rows {
		return fmt.Errorf("column %q has %d rows, the frame has %d", name, len(values), frame.rows)
	}
	frame.rows = len(values)
	frame.names = append(frame.names, name)
	frame.categorical[name] = append([]string(nil), values...)
	return nil
}

func (frame *Frame) has(name string) bool {
	if _, ok := frame.numeric[name]; ok {
		return true
	}
	_, ok := frame.categorical[name]
	return ok
}

//Names returns the column names in insertion order.
func (frame *Frame) Names() []string {
	return append([]string(nil), frame.names...)
}

//Rows returns the number of rows.
func (frame *Frame) Rows() int {
	return frame.rows
}

//Column returns a copy of a column: []float64 for numeric columns, []string otherwise.
func (frame *Frame) Column(name string) (interface{}, bool) {
	if ind, ok := frame.numeric[name]; ok {
		return mat.Col(nil, ind, frame.data), true
	}
	if values, ok := frame.categorical[name]; ok {
		return append([]string(nil), values...), true
	}
	return nil, false
}

//IsFrame reports whether v is a dataframe.
func IsFrame(v interface{}) bool {
	switch v.(type) {
	case *Frame, Frame:
		return true
	}
	return false
}

//ToColumns converts a dataframe into columns.
func ToColumns(v interface{}) (unroll.Columns, error) {
	var frame *Frame
	switch f := v.(type) {
	case *Frame:
		frame = f
	case Frame:
		frame = &f
	default:
		return nil, fmt.Errorf("%T is not a dataframe", v)
	}
	if frame == nil {
		return nil, errors.New("nil dataframe")
	}

	columns := make(unroll.Columns, len(frame.names))
	for _, name := range frame.names {
		columns[name], _ = frame.Column(name)
	}
	return columns, nil
}
