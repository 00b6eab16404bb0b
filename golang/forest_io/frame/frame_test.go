package frame

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarstars/forest_io/golang/forest_io/unroll"
	"gonum.org/v1/gonum/mat"
)

func TestNewFrame(t *testing.T) {
	frame, err := New([]string{"a", "b"}, mat.NewDense(3, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
	}))
	require.NoError(t, err)
	require.NoError(t, frame.AddCategorical("c", []string{"x", "y", "z"}))

	assert.Equal(t, []string{"a", "b", "c"}, frame.Names())
	assert.Equal(t, 3, frame.Rows())

	column, ok := frame.Column("b")
	require.True(t, ok)
	assert.Equal(t, []float64{10, 20, 30}, column)

	_, ok = frame.Column("missing")
	assert.False(t, ok)
}

func TestNewFrameErrors(t *testing.T) {
	_, err := New([]string{"a"}, mat.NewDense(2, 2, nil))
	assert.Error(t, err)

	_, err = New([]string{"a", "a"}, mat.NewDense(2, 2, nil))
	assert.Error(t, err)

	_, err = New([]string{"a"}, nil)
	assert.Error(t, err)

	frame, err := New([]string{"a"}, mat.NewDense(2, 1, nil))
	require.NoError(t, err)
	assert.Error(t, frame.AddCategorical("a", []string{"x", "y"}))
	assert.Error(t, frame.AddCategorical("b", []string{"x"}))
}

func TestCategoricalOnlyFrame(t *testing.T) {
	frame, err := New(nil, nil)
	require.NoError(t, err)
	require.NoError(t, frame.AddCategorical("c", []string{"x", "y"}))
	assert.Equal(t, 2, frame.Rows())

	columns, err := ToColumns(frame)
	require.NoError(t, err)
	assert.Equal(t, unroll.Columns{"c": []string{"x", "y"}}, columns)
}

func TestReadCSV(t *testing.T) {
	src := "age,city,score\n31,paris,0.5\n45,lyon,\n27,paris,1.5\n"

	frame, err := ReadCSV(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "city", "score"}, frame.Names())
	assert.Equal(t, 3, frame.Rows())

	age, _ := frame.Column("age")
	assert.Equal(t, []float64{31, 45, 27}, age)

	city, _ := frame.Column("city")
	assert.Equal(t, []string{"paris", "lyon", "paris"}, city)

	score, _ := frame.Column("score")
	values := score.([]float64)
	assert.Equal(t, 0.5, values[0])
	assert.True(t, math.IsNaN(values[1]))
	assert.Equal(t, 1.5, values[2])
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("a,b\n"))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2\n3\n"))
	assert.Error(t, err)
}

func TestToColumns(t *testing.T) {
	frame, err := ReadCSV(strings.NewReader("x,label\n1,a\n2,b\n"))
	require.NoError(t, err)

	assert.True(t, IsFrame(frame))
	assert.True(t, IsFrame(*frame))
	assert.False(t, IsFrame(map[string]interface{}{}))

	columns, err := ToColumns(frame)
	require.NoError(t, err)
	assert.Equal(t, unroll.Columns{"x": []float64{1, 2}, "label": []string{"a", "b"}}, columns)

	_, err = ToColumns(42)
	assert.Error(t, err)
}
