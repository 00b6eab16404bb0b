package leaf

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

//Value is the prediction stored in a leaf. It is one of RegressionValue, ProbabilityValue
//or UpliftValue; the set is closed.
type Value interface {
	// Examples is the weighted number of training examples that reached the node.
	Examples() float64
	// Kind is the task shape of the node the value was decoded from.
	Kind() Kind
	fmt.Stringer

	isValue()
}

//RegressionValue is the value of a regression tree. Gradient boosted classification and
//ranking trees also store their logit in Value.
type RegressionValue struct {
	NumExamples float64 `json:"num_examples"`
	Value       float64 `json:"value"`
	// StandardDeviation is nil when it cannot be computed from the node.
	StandardDeviation *float64 `json:"standard_deviation,omitempty"`
}

//ProbabilityValue is a class distribution. Probability[i] belongs to the i-th real class of
//the label dictionary; the out-of-vocabulary class is not reported.
type ProbabilityValue struct {
	NumExamples float64   `json:"num_examples"`
	Probability []float64 `json:"probability"`
}

//UpliftValue holds TreatmentEffect[i], the effect of treatment i+1 against the control group.
type UpliftValue struct {
	NumExamples     float64   `json:"num_examples"`
	TreatmentEffect []float64 `json:"treatment_effect"`
}

func (RegressionValue) isValue()  {}
func (ProbabilityValue) isValue() {}
func (UpliftValue) isValue()      {}

func (v RegressionValue) Examples() float64  { return v.NumExamples }
func (v ProbabilityValue) Examples() float64 { return v.NumExamples }
func (v UpliftValue) Examples() float64      { return v.NumExamples }

func (RegressionValue) Kind() Kind  { return KindRegressor }
func (ProbabilityValue) Kind() Kind { return KindClassifier }
func (UpliftValue) Kind() Kind      { return KindUplift }

func (v RegressionValue) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("value: %.5g", v.Value))
	if v.StandardDeviation != nil {
		sb.WriteString(fmt.Sprintf(" sd: %.5g", *v.StandardDeviation))
	}
	sb.WriteString(fmt.Sprintf(" n: %g", v.NumExamples))
	return sb.String()
}

func (v ProbabilityValue) String() string {
	return fmt.Sprintf("probability: %s n: %g", formatFloats(v.Probability), v.NumExamples)
}

func (v UpliftValue) String() string {
	return fmt.Sprintf("effect: %s n: %g", formatFloats(v.TreatmentEffect), v.NumExamples)
}

//MarshalJSON writes non-finite probabilities, produced by a zero total weight, as the
//strings "NaN", "+Inf" and "-Inf".
func (v ProbabilityValue) MarshalJSON() ([]byte, error) {
	var probability []interface{}
	if v.Probability != nil {
		probability = make([]interface{}, len(v.Probability))
		for ind, val := range v.Probability {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				probability[ind] = strconv.FormatFloat(val, 'g', -1, 64)
			} else {
				probability[ind] = val
			}
		}
	}
	return json.Marshal(struct {
		NumExamples float64       `json:"num_examples"`
		Probability []interface{} `json:"probability"`
	}{v.NumExamples, probability})
}

//TopClass returns the index of the most probable class, or -1 for an empty distribution.
func (v ProbabilityValue) TopClass() int {
	if len(v.Probability) == 0 {
		return -1
	}
	return floats.MaxIdx(v.Probability)
}

func formatFloats(values []float64) string {
	parts := make([]string, len(values))
	for ind, val := range values {
		parts[ind] = fmt.Sprintf("%.3g", val)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
