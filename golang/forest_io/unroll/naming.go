package unroll

import (
	"fmt"
	"strconv"
)

//SubColumnNames returns the names given to the features of a multi-dimensional column.
//Indices are zero padded to the number of digits of numFeatures so that the names sort
//lexicographically in feature order: "x" with 10 features gives x.00_of_10 ... x.09_of_10.
func SubColumnNames(name string, numFeatures int) []string {
	if numFeatures <= 0 {
		return nil
	}
	// Same as floor(log10(numFeatures)) + 1 without the rounding of math.Log10.
	width := len(strconv.Itoa(numFeatures))
	postfix := fmt.Sprintf("_of_%0*d", width, numFeatures)

	names := make([]string, numFeatures)
	for ind := range names {
		names[ind] = fmt.Sprintf("%s.%0*d%s", name, width, ind, postfix)
	}
	return names
}
