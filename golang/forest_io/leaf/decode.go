// Package leaf turns the label distribution stored in a tree node into a typed prediction.
package leaf

import "math"

//Decode extracts the prediction of a node. The returned value owns all of its slices.
func Decode(node *Node) (Value, error) {
	kind, err := node.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindClassifier:
		return decodeClassifier(node.Classifier)
	case KindRegressor:
		return decodeRegressor(node.Regressor)
	default:
		return decodeUplift(node.Uplift), nil
	}
}

//decodeClassifier drops the out-of-vocabulary slot and normalizes by the total weight.
//A zero total weight is not guarded and yields NaN or +Inf entries.
func decodeClassifier(output *ClassifierOutput) (Value, error) {
	dist := output.Distribution
	if dist == nil {
		return nil, &UnsupportedVariantError{Present: []Kind{KindClassifier}, Reason: "missing distribution"}
	}

	var probability []float64
	if len(dist.Counts) > 1 {
		probability = make([]float64, len(dist.Counts)-1)
		for ind, count := range dist.Counts[1:] {
			probability[ind] = count / dist.Sum
		}
	} else {
		probability = []float64{}
	}

	return ProbabilityValue{NumExamples: dist.Sum, Probability: probability}, nil
}

func decodeRegressor(output *RegressorOutput) (Value, error) {
	dist := output.Distribution
	if dist == nil {
		return nil, &UnsupportedVariantError{Present: []Kind{KindRegressor}, Reason: "missing distribution"}
	}

	return RegressionValue{
		NumExamples:       dist.Count,
		Value:             output.TopValue,
		StandardDeviation: standardDeviation(dist),
	}, nil
}

//standardDeviation returns nil when the second moment is absent, the count is not positive,
//or rounding made the variance negative.
func standardDeviation(dist *NormalDistribution) *float64 {
	if dist.SumSquares == nil || !(dist.Count > 0) {
		return nil
	}
	mean := dist.Sum / dist.Count
	variance := *dist.SumSquares/dist.Count - mean*mean
	if !(variance >= 0) {
		return nil
	}
	sd := math.Sqrt(variance)
	return &sd
}

func decodeUplift(output *UpliftOutput) Value {
	effect := make([]float64, len(output.TreatmentEffect))
	copy(effect, output.TreatmentEffect)
	return UpliftValue{NumExamples: output.SumWeights, TreatmentEffect: effect}
}
