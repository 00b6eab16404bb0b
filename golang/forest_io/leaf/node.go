package leaf

//Node is the stored record of one tree node. Exactly one of Classifier, Regressor and Uplift
//is expected to be set; the field names follow the model format so JSON dumps load as is.
type Node struct {
	Classifier *ClassifierOutput `json:"classifier,omitempty" yaml:"classifier,omitempty"`
	Regressor  *RegressorOutput  `json:"regressor,omitempty" yaml:"regressor,omitempty"`
	Uplift     *UpliftOutput     `json:"uplift,omitempty" yaml:"uplift,omitempty"`
}

//ClassifierOutput is the label distribution of a classification node.
type ClassifierOutput struct {
	TopValue     int32                `json:"top_value" yaml:"top_value"`
	Distribution *IntegerDistribution `json:"distribution,omitempty" yaml:"distribution,omitempty"`
}

//IntegerDistribution holds weighted per-class counts. Counts[0] is the out-of-vocabulary class.
type IntegerDistribution struct {
	Counts []float64 `json:"counts" yaml:"counts"`
	Sum    float64   `json:"sum" yaml:"sum"`
}

//RegressorOutput is the label distribution of a regression node.
type RegressorOutput struct {
	TopValue     float64             `json:"top_value" yaml:"top_value"`
	Distribution *NormalDistribution `json:"distribution,omitempty" yaml:"distribution,omitempty"`
}

//NormalDistribution keeps the first two moments of the label. SumSquares is optional.
type NormalDistribution struct {
	Sum        float64  `json:"sum" yaml:"sum"`
	SumSquares *float64 `json:"sum_squares,omitempty" yaml:"sum_squares,omitempty"`
	Count      float64  `json:"count" yaml:"count"`
}

//UpliftOutput is the treatment effect estimate of an uplift node.
type UpliftOutput struct {
	SumWeights              float64   `json:"sum_weights" yaml:"sum_weights"`
	SumWeightsPerTreatment  []float64 `json:"sum_weights_per_treatment,omitempty" yaml:"sum_weights_per_treatment,omitempty"`
	TreatmentEffect         []float64 `json:"treatment_effect" yaml:"treatment_effect"`
	NumExamplesPerTreatment []int64   `json:"num_examples_per_treatment,omitempty" yaml:"num_examples_per_treatment,omitempty"`
}

//Kind identifies which task shape a node carries.
type Kind int

const (
	KindClassifier Kind = iota
	KindRegressor
	KindUplift
)

func (k Kind) String() string {
	switch k {
	case KindClassifier:
		return "classifier"
	case KindRegressor:
		return "regressor"
	case KindUplift:
		return "uplift"
	}
	return "unknown"
}

//Kind returns the task shape of the node. The sub-messages are inspected in the fixed order
//classifier, regressor, uplift. A node with none or several of them set is malformed.
func (node *Node) Kind() (Kind, error) {
	if node == nil {
		return 0, &UnsupportedVariantError{}
	}

	var present []Kind
	if node.Classifier != nil {
		present = append(present, KindClassifier)
	}
	if node.Regressor != nil {
		present = append(present, KindRegressor)
	}
	if node.Uplift != nil {
		present = append(present, KindUplift)
	}

	if len(present) != 1 {
		return 0, &UnsupportedVariantError{Present: present}
	}
	return present[0], nil
}
