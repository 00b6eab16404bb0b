package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

//ReadCSV reads a frame from a csv stream with a header row. A column whose non-empty cells
//all parse as floats is numeric, with empty cells read as NaN; any other column is categorical.
func ReadCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("csv has no header")
	}
	header := rows[0]
	records := rows[1:]
	if len(records) == 0 {
		return nil, errors.New("csv has no rows")
	}

	numericValues := make(map[int][]float64)
	var numericNames []string
	var numericIndices []int
	for col := range header {
		values, ok := parseNumeric(records, col)
		if ok {
			numericValues[col] = values
			numericNames = append(numericNames, header[col])
			numericIndices = append(numericIndices, col)
		}
	}

	var data *mat.Dense
	if len(numericIndices) > 0 {
		data = mat.NewDense(len(records), len(numericIndices), nil)
		for q, col := range numericIndices {
			data.SetCol(q, numericValues[col])
		}
	}

	frame, err := New(numericNames, data)
	if err != nil {
		return nil, err
	}
	// Keep the csv column order.
	frame.names = frame.names[:0]
	for col, name := range header {
		if _, ok := numericValues[col]; ok {
			frame.names = append(frame.names, name)
			continue
		}
		values := make([]string, len(records))
		for p, record := range records {
			values[p] = record[col]
		}
		if frame.has(name) {
			return nil, fmt.Errorf("duplicated column %q", name)
		}
		frame.categorical[name] = values
		frame.names = append(frame.names, name)
	}
	frame.rows = len(records)
	return frame, nil
}

func parseNumeric(records [][]string, col int) ([]float64, bool) {
	values := make([]float64, len(records))
	seen := false
	for p, record := range records {
		cell := record[col]
		if cell == "" {
			values[p] = math.NaN()
			continue
		}
		val, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		values[p] = val
		seen = true
	}
	return values, seen
}
