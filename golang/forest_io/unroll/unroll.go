// Package unroll flattens multi-dimensional input columns into single-dimensional ones.
//
// A column is multi-dimensional when it holds a gonum mat.Matrix or a gorgonia tensor.Tensor
// of rank two or more. Everything else (slices, scalars, mat.Vector, rank one tensors) is
// considered single-dimensional and kept as is.
package unroll

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

//Columns maps a column name to its raw values.
type Columns map[string]interface{}

//Names returns the column names in lexicographic order.
func (columns Columns) Names() []string {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//Unroll replaces every two-dimensional column of shape [num_rows, num_features] by
//num_features columns named by SubColumnNames. Columns listed in protected must not need
//unrolling. On error nothing is returned.
func Unroll(src Columns, protected []string) (Columns, error) {
	protectedSet := make(map[string]struct{}, len(protected))
	for _, name := range protected {
		protectedSet[name] = struct{}{}
	}

	dst := make(Columns, len(src))
	for _, name := range src.Names() {
		_, isProtected := protectedSet[name]
		if err := unrollColumn(dst, name, src[name], !isProtected); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

//Shape returns the shape of a recognized array value. ok is false for any other value.
func Shape(value interface{}) (shape []int, ok bool) {
	switch v := value.(type) {
	case mat.Vector:
		return []int{v.Len()}, true
	case mat.Matrix:
		r, c := v.Dims()
		return []int{r, c}, true
	case tensor.Tensor:
		return v.Shape().Clone(), true
	}
	return nil, false
}

func unrollColumn(dst Columns, name string, value interface{}, allowUnroll bool) error {
	shape, ok := Shape(value)
	if !ok || len(shape) <= 1 {
		dst[name] = value
		return nil
	}

	if !allowUnroll {
		return &ProtectedColumnError{Column: name, Shape: shape}
	}
	if len(shape) > 2 {
		return &InvalidShapeError{Column: name, Shape: shape}
	}

	numFeatures := shape[1]
	if numFeatures == 0 {
		return &EmptyMultiColumnError{Column: name, Shape: shape}
	}

	for featureIndex, subName := range SubColumnNames(name, numFeatures) {
		sub, err := featureColumn(value, featureIndex)
		if err != nil {
			return fmt.Errorf("unroll column %q feature %d: %w", name, featureIndex, err)
		}
		dst[subName] = sub
	}
	return nil
}

//featureColumn copies out column featureIndex of a two-dimensional value.
func featureColumn(value interface{}, featureIndex int) (interface{}, error) {
	switch v := value.(type) {
	case mat.Matrix:
		return mat.Col(nil, featureIndex, v), nil
	case tensor.Tensor:
		return tensorColumn(v, featureIndex)
	}
	return nil, fmt.Errorf("unexpected column type %T", value)
}

//tensorColumn returns a rank one tensor of shape [num_rows] even when num_rows is 1.
func tensorColumn(t tensor.Tensor, featureIndex int) (tensor.Tensor, error) {
	numRows := t.Shape()[0]
	col := tensor.New(tensor.Of(t.Dtype()), tensor.WithShape(numRows))
	for row := 0; row < numRows; row++ {
		val, err := t.At(row, featureIndex)
		if err != nil {
			return nil, err
		}
		if err := col.SetAt(val, row); err != nil {
			return nil, err
		}
	}
	return col, nil
}
