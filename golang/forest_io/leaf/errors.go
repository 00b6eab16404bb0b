package leaf

import (
	"errors"
	"fmt"
	"strings"
)

//ErrUnsupportedVariant is matched by every UnsupportedVariantError.
var ErrUnsupportedVariant = errors.New("unsupported leaf value")

//UnsupportedVariantError is returned when a node carries no known task shape,
//several of them, or a task shape without its distribution.
type UnsupportedVariantError struct {
	Present []Kind
	Reason  string
}

func (e *UnsupportedVariantError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrUnsupportedVariant.Error())
	if len(e.Present) == 0 {
		sb.WriteString(": node has none of classifier, regressor, uplift")
	} else {
		names := make([]string, len(e.Present))
		for ind, kind := range e.Present {
			names[ind] = kind.String()
		}
		sb.WriteString(fmt.Sprintf(": node has [%s]", strings.Join(names, ", ")))
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	return sb.String()
}

func (e *UnsupportedVariantError) Unwrap() error {
	return ErrUnsupportedVariant
}
