package unroll

import (
	"errors"
	"fmt"
)

var (
	//ErrInvalidShape is matched by InvalidShapeError.
	ErrInvalidShape = errors.New("invalid shape")
	//ErrEmptyMultiColumn is matched by EmptyMultiColumnError.
	ErrEmptyMultiColumn = errors.New("multi-dimensional column has no features")
	//ErrProtectedColumn is matched by ProtectedColumnError.
	ErrProtectedColumn = errors.New("protected column is multi-dimensional")
	//ErrUnsupportedSource is matched by UnsupportedSourceError.
	ErrUnsupportedSource = errors.New("unsupported source type")
)

//InvalidShapeError is returned for columns with more than two dimensions.
type InvalidShapeError struct {
	Column string
	Shape  []int
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("%v: column %q has %d dimensions (shape=%v), only one or two are supported",
		ErrInvalidShape, e.Column, len(e.Shape), e.Shape)
}

func (e *InvalidShapeError) Unwrap() error { return ErrInvalidShape }

//EmptyMultiColumnError is returned for two-dimensional columns without any feature.
type EmptyMultiColumnError struct {
	Column string
	Shape  []int
}

func (e *EmptyMultiColumnError) Error() string {
	return fmt.Sprintf("%v: column %q (shape=%v)", ErrEmptyMultiColumn, e.Column, e.Shape)
}

func (e *EmptyMultiColumnError) Unwrap() error { return ErrEmptyMultiColumn }

//ProtectedColumnError is returned when a column that must stay whole needs to be split.
type ProtectedColumnError struct {
	Column string
	Shape  []int
}

func (e *ProtectedColumnError) Error() string {
	return fmt.Sprintf("%v: column %q has shape=%v while it is required to be single-dimensional (e.g. shape=[num_examples])",
		ErrProtectedColumn, e.Column, e.Shape)
}

func (e *ProtectedColumnError) Unwrap() error { return ErrProtectedColumn }

//UnsupportedSourceError is returned when no source accepts the dataset.
type UnsupportedSourceError struct {
	Type    string
	Sources []string
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("%v: cannot import dataset from %s, expected one of %v or map[string]interface{}",
		ErrUnsupportedSource, e.Type, e.Sources)
}

func (e *UnsupportedSourceError) Unwrap() error { return ErrUnsupportedSource }
