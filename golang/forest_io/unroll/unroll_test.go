package unroll

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

//denseRange creates a rows x cols matrix where element (p, q) is 100*p + q.
func denseRange(rows, cols int) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	for p := 0; p < rows; p++ {
		for q := 0; q < cols; q++ {
			m.Set(p, q, float64(100*p+q))
		}
	}
	return m
}

func TestSubColumnNames(t *testing.T) {
	assert.Equal(t, []string{"f.0_of_1"}, SubColumnNames("f", 1))
	assert.Equal(t, "x.8_of_9", SubColumnNames("x", 9)[8])

	names := SubColumnNames("x", 10)
	require.Len(t, names, 10)
	assert.Equal(t, "x.00_of_10", names[0])
	assert.Equal(t, "x.09_of_10", names[9])

	names = SubColumnNames("x", 1000)
	assert.Equal(t, "x.0000_of_1000", names[0])
	assert.Equal(t, "x.0999_of_1000", names[999])
	assert.True(t, sort.StringsAreSorted(names))

	assert.Nil(t, SubColumnNames("x", 0))
}

func TestUnrollMatrix(t *testing.T) {
	rows := 4
	src := Columns{"f": denseRange(rows, 12)}

	dst, err := Unroll(src, nil)
	require.NoError(t, err)
	require.Len(t, dst, 12)
	assert.NotContains(t, dst, "f")

	for q := 0; q < 12; q++ {
		name := fmt.Sprintf("f.%02d_of_12", q)
		require.Contains(t, dst, name)
		column, ok := dst[name].([]float64)
		require.True(t, ok, "%s has type %T", name, dst[name])
		require.Len(t, column, rows)
		for p := 0; p < rows; p++ {
			assert.Equal(t, float64(100*p+q), column[p])
		}
	}
}

func TestUnrollSingleFeature(t *testing.T) {
	dst, err := Unroll(Columns{"f": denseRange(3, 1)}, nil)
	require.NoError(t, err)
	assert.Equal(t, Columns{"f.0_of_1": []float64{0, 100, 200}}, dst)
}

func TestUnrollTensor(t *testing.T) {
	backing := []float64{
		1, 2, 3,
		4, 5, 6,
	}
	src := Columns{"t": tensor.New(tensor.WithShape(2, 3), tensor.WithBacking(backing))}

	dst, err := Unroll(src, nil)
	require.NoError(t, err)
	require.Len(t, dst, 3)

	for q, want := range [][]float64{{1, 4}, {2, 5}, {3, 6}} {
		name := fmt.Sprintf("t.%d_of_3", q)
		column, ok := dst[name].(tensor.Tensor)
		require.True(t, ok, "%s has type %T", name, dst[name])
		assert.Equal(t, 1, column.Dims())
		assert.Equal(t, want, column.Data())
	}
}

func TestUnrollTensorSingleRow(t *testing.T) {
	src := Columns{"t": tensor.New(tensor.WithShape(1, 3), tensor.WithBacking([]float64{1, 2, 3}))}

	dst, err := Unroll(src, nil)
	require.NoError(t, err)
	require.Len(t, dst, 3)

	for q, want := range []float64{1, 2, 3} {
		name := fmt.Sprintf("t.%d_of_3", q)
		column, ok := dst[name].(tensor.Tensor)
		require.True(t, ok, "%s has type %T", name, dst[name])
		assert.Equal(t, tensor.Shape{1}, column.Shape())
		assert.Equal(t, []float64{want}, column.Data())
	}
}

func TestUnrollKeepsSingleDimensional(t *testing.T) {
	src := Columns{
		"a":      []float64{1, 2, 3},
		"b":      []string{"x", "y", "z"},
		"vector": mat.NewVecDense(3, []float64{7, 8, 9}),
		"rank1":  tensor.New(tensor.WithShape(3), tensor.WithBacking([]float64{1, 2, 3})),
		"scalar": 4.5,
	}

	dst, err := Unroll(src, []string{"a", "vector", "rank1"})
	require.NoError(t, err)
	assert.Equal(t, src, dst)
}

func TestUnrollMixed(t *testing.T) {
	src := Columns{
		"age":   []float64{30, 40},
		"embed": denseRange(2, 2),
	}

	dst, err := Unroll(src, []string{"age"})
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "embed.0_of_2", "embed.1_of_2"}, dst.Names())
	assert.Equal(t, []float64{30, 40}, dst["age"])
}

func TestUnrollProtectedColumn(t *testing.T) {
	src := Columns{
		"a": []float64{1, 2, 3},
		"p": denseRange(3, 3),
	}

	dst, err := Unroll(src, []string{"p"})
	assert.Nil(t, dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProtectedColumn))

	var protectedErr *ProtectedColumnError
	require.True(t, errors.As(err, &protectedErr))
	assert.Equal(t, "p", protectedErr.Column)
	assert.Equal(t, []int{3, 3}, protectedErr.Shape)
}

func TestUnrollInvalidShape(t *testing.T) {
	src := Columns{"cube": tensor.New(tensor.WithShape(2, 3, 4), tensor.WithBacking(make([]float64, 24)))}

	dst, err := Unroll(src, nil)
	assert.Nil(t, dst)
	require.Error(t, err)

	var shapeErr *InvalidShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "cube", shapeErr.Column)
	assert.Equal(t, []int{2, 3, 4}, shapeErr.Shape)
	assert.Contains(t, err.Error(), "3 dimensions")
}

func TestUnrollProtectedCheckedBeforeShape(t *testing.T) {
	src := Columns{"cube": tensor.New(tensor.WithShape(2, 2, 2), tensor.WithBacking(make([]float64, 8)))}

	_, err := Unroll(src, []string{"cube"})
	assert.True(t, errors.Is(err, ErrProtectedColumn))
}

func TestUnrollEmptyMultiColumn(t *testing.T) {
	dst, err := Unroll(Columns{"empty": &mat.Dense{}}, nil)
	assert.Nil(t, dst)
	require.Error(t, err)

	var emptyErr *EmptyMultiColumnError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "empty", emptyErr.Column)
	assert.Equal(t, []int{0, 0}, emptyErr.Shape)
}

func TestUnrollEmptyTensorWithRows(t *testing.T) {
	src := Columns{"empty": tensor.New(tensor.Of(tensor.Float64), tensor.WithShape(3, 0))}

	dst, err := Unroll(src, nil)
	assert.Nil(t, dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyMultiColumn))

	var emptyErr *EmptyMultiColumnError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, []int{3, 0}, emptyErr.Shape)
}

func TestUnrollNamesDoNotCollide(t *testing.T) {
	src := Columns{
		"f":   denseRange(2, 11),
		"f.0": denseRange(2, 3),
		"g":   []float64{1, 2},
	}

	dst, err := Unroll(src, nil)
	require.NoError(t, err)
	assert.Len(t, dst, 11+3+1)
}

func TestUnrollDoesNotModifySource(t *testing.T) {
	m := denseRange(2, 2)
	src := Columns{"m": m}

	dst, err := Unroll(src, nil)
	require.NoError(t, err)
	assert.Contains(t, src, "m")

	dst["m.0_of_2"].([]float64)[0] = -1
	assert.Equal(t, 0.0, m.At(0, 0))
}
