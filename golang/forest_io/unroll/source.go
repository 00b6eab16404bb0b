package unroll

import "fmt"

//Source converts one kind of dataset container into Columns.
type Source struct {
	Name    string
	Match   func(data interface{}) bool
	Convert func(data interface{}) (Columns, error)
}

//Registry is an ordered list of sources. The first matching source wins; plain maps are
//accepted after every source was tried.
type Registry []Source

//Columns converts data into Columns without unrolling them.
func (registry Registry) Columns(data interface{}) (Columns, error) {
	for _, source := range registry {
		if !source.Match(data) {
			continue
		}
		columns, err := source.Convert(data)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", source.Name, err)
		}
		return columns, nil
	}

	switch v := data.(type) {
	case Columns:
		return v, nil
	case map[string]interface{}:
		return Columns(v), nil
	}

	names := make([]string, len(registry))
	for ind, source := range registry {
		names[ind] = source.Name
	}
	return nil, &UnsupportedSourceError{Type: fmt.Sprintf("%T", data), Sources: names}
}

//Unroll converts data into Columns and unrolls them.
func (registry Registry) Unroll(data interface{}, protected []string) (Columns, error) {
	columns, err := registry.Columns(data)
	if err != nil {
		return nil, err
	}
	return Unroll(columns, protected)
}
