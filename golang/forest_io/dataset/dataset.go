// Package dataset casts any supported dataset container into single-dimensional columns.
package dataset

import (
	"github.com/tarstars/forest_io/golang/forest_io/frame"
	"github.com/tarstars/forest_io/golang/forest_io/tensorset"
	"github.com/tarstars/forest_io/golang/forest_io/unroll"
)

//Sources returns the supported containers in priority order: dataframes first, then
//tensor datasets. Plain maps are handled by the registry itself.
func Sources() unroll.Registry {
	return unroll.Registry{
		{Name: "dataframe", Match: frame.IsFrame, Convert: frame.ToColumns},
		{Name: "tensor dataset", Match: tensorset.IsSet, Convert: tensorset.ToColumns},
	}
}

//Cast converts data into columns and unrolls every multi-dimensional column. Columns listed
//in dontUnroll must already be single-dimensional.
func Cast(data interface{}, dontUnroll []string) (unroll.Columns, error) {
	return Sources().Unroll(data, dontUnroll)
}
