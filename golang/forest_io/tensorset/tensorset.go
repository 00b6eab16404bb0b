// Package tensorset is a tensor-backed dataset: every feature is a gorgonia tensor whose first
// dimension indexes the examples.
package tensorset

import (
	"errors"
	"fmt"

	"github.com/tarstars/forest_io/golang/forest_io/unroll"
	"gorgonia.org/tensor"
)

//Set holds named tensors sharing the same number of examples.
type Set struct {
	names   []string
	tensors map[string]tensor.Tensor
	rows    int
}

//New creates an empty set.
func New() *Set {
	return &Set{tensors: make(map[string]tensor.Tensor), rows: -1}
}

//Add registers a feature. Scalars are rejected; the first dimension of every tensor must match.
func (set *Set) Add(name string, t tensor.Tensor) error {
	if t == nil {
		return fmt.Errorf("feature %q: nil tensor", name)
	}
	if _, ok := set.tensors[name]; ok {
		return fmt.Errorf("duplicated feature %q", name)
	}
	shape := t.Shape()
	if t.Dims() == 0 || len(shape) == 0 {
		return fmt.Errorf("feature %q is a scalar", name)
	}
	if set.rows >= 0 && shape[0] != set.rows {
		return fmt.Errorf("feature %q has %d examples, the set has %d", name, shape[0], set.rows)
	}
	set.rows = shape[0]
	set.names = append(set.names, name)
	set.tensors[name] = t
	return nil
}

//Names returns the feature names in insertion order.
func (set *Set) Names() []string {
	return append([]string(nil), set.names...)
}

//Get returns a feature.
func (set *Set) Get(name string) (tensor.Tensor, bool) {
	t, ok := set.tensors[name]
	return t, ok
}

//Rows returns the number of examples, 0 for an empty set.
func (set *Set) Rows() int {
	if set.rows < 0 {
		return 0
	}
	return set.rows
}

//IsSet reports whether v is a tensor dataset.
func IsSet(v interface{}) bool {
	_, ok := v.(*Set)
	return ok
}

//ToColumns converts a tensor dataset into columns. Tensors are shared, not copied.
func ToColumns(v interface{}) (unroll.Columns, error) {
	set, ok := v.(*Set)
	if !ok {
		return nil, fmt.Errorf("%T is not a tensor dataset", v)
	}
	if set == nil {
		return nil, errors.New("nil tensor dataset")
	}

	columns := make(unroll.Columns, len(set.names))
	for _, name := range set.names {
		columns[name] = set.tensors[name]
	}
	return columns, nil
}
