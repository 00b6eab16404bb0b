package tensorset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

const npyExt = ".npy"

//DecodeNpy reads an array of any rank from a npy stream into a float64 tensor.
func DecodeNpy(r io.Reader) (tensor.Tensor, error) {
	reader, err := npyio.NewReader(r)
	if err != nil {
		return nil, err
	}

	var data []float64
	if err := reader.Read(&data); err != nil {
		return nil, err
	}

	shape := append([]int(nil), reader.Header.Descr.Shape...)
	if len(shape) == 0 {
		if len(data) != 1 {
			return nil, fmt.Errorf("scalar array holds %d values", len(data))
		}
		return tensor.New(tensor.FromScalar(data[0])), nil
	}

	if !reader.Header.Descr.Fortran || len(shape) == 1 {
		return tensor.New(tensor.WithShape(shape...), tensor.WithBacking(data)), nil
	}

	// Column-major data is a row-major array of the reversed shape.
	reversed := make([]int, len(shape))
	for ind, dim := range shape {
		reversed[len(shape)-1-ind] = dim
	}
	t := tensor.New(tensor.WithShape(reversed...), tensor.WithBacking(data))
	if err := t.T(); err != nil {
		return nil, err
	}
	if err := t.Transpose(); err != nil {
		return nil, err
	}
	return t, nil
}

//ReadNpy reads the content of a npy file.
func ReadNpy(fileName string) (t tensor.Tensor, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	t, err = DecodeNpy(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fileName, err)
	}
	return t, nil
}

//ReadDir loads every npy file of a directory as a feature named after the file.
func ReadDir(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var fileNames []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != npyExt {
			continue
		}
		fileNames = append(fileNames, entry.Name())
	}
	sort.Strings(fileNames)

	set := New()
	for _, fileName := range fileNames {
		t, err := ReadNpy(filepath.Join(dir, fileName))
		if err != nil {
			return nil, err
		}
		if err := set.Add(strings.TrimSuffix(fileName, npyExt), t); err != nil {
			return nil, err
		}
	}
	return set, nil
}

//EncodeNpy writes a []float64, a mat.Matrix or a float64 tensor of rank one or two.
func EncodeNpy(w io.Writer, values interface{}) error {
	switch v := values.(type) {
	case []float64:
		return npyio.Write(w, v)
	case mat.Matrix:
		return npyio.Write(w, v)
	case tensor.Tensor:
		return encodeTensor(w, v)
	}
	return fmt.Errorf("cannot write %T as npy", values)
}

func encodeTensor(w io.Writer, t tensor.Tensor) error {
	if t.Dtype() != tensor.Float64 {
		return fmt.Errorf("cannot write %v tensor as npy", t.Dtype())
	}
	if view, ok := t.(tensor.View); ok {
		t = view.Materialize()
	}
	data, ok := t.Data().([]float64)
	if !ok {
		return fmt.Errorf("unexpected tensor data %T", t.Data())
	}

	shape := t.Shape()
	switch len(shape) {
	case 0, 1:
		return npyio.Write(w, data)
	case 2:
		if shape[0] == 0 || shape[1] == 0 {
			return fmt.Errorf("cannot write empty tensor of shape %v as npy", shape)
		}
		return npyio.Write(w, mat.NewDense(shape[0], shape[1], data))
	}
	return fmt.Errorf("cannot write tensor of shape %v as npy", shape)
}

//WriteNpy writes values to a npy file.
func WriteNpy(fileName string, values interface{}) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return EncodeNpy(f, values)
}
