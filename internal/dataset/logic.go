// Package dataset provides the built-in logic-gate training sets.
//
// Each dataset is a pair of matrices in denominator layout: inputs have one
// column per sample, targets the matching column of expected outputs. The
// gates are the classic teaching sets for a small sigmoid network; XOR is
// the one that needs a hidden layer.
package dataset

import (
	"fmt"

	"github.com/dendrite-ml/dendrite/internal/matrix"
)

// Dataset is a named pair of input and target matrices.
type Dataset struct {
	Name    string
	Inputs  *matrix.Matrix // [input_units, samples]
	Targets *matrix.Matrix // [output_units, samples]
}

// Samples returns the number of samples (columns).
func (d Dataset) Samples() int {
	return d.Inputs.Cols()
}

// XOR returns the exclusive-or dataset: 2 inputs, 1 output, 4 samples.
func XOR() Dataset {
	return gate("xor", []float64{0, 1, 1, 0})
}

// AND returns the logical-and dataset: 2 inputs, 1 output, 4 samples.
func AND() Dataset {
	return gate("and", []float64{0, 0, 0, 1})
}

// OR returns the logical-or dataset: 2 inputs, 1 output, 4 samples.
func OR() Dataset {
	return gate("or", []float64{0, 1, 1, 1})
}

// ByName looks up a built-in dataset by name.
//
// Known names: "xor", "and", "or". Returns an error for anything else.
func ByName(name string) (Dataset, error) {
	switch name {
	case "xor":
		return XOR(), nil
	case "and":
		return AND(), nil
	case "or":
		return OR(), nil
	default:
		return Dataset{}, fmt.Errorf("unknown dataset %q (want xor, and, or)", name)
	}
}

// gate builds a two-input gate dataset over the truth table columns
// (0,0), (0,1), (1,0), (1,1).
func gate(name string, outputs []float64) Dataset {
	inputs, err := matrix.FromSlice([]float64{
		0, 0, 1, 1,
		0, 1, 0, 1,
	}, 2, 4)
	if err != nil {
		panic(err)
	}
	targets, err := matrix.FromSlice(outputs, 1, 4)
	if err != nil {
		panic(err)
	}
	return Dataset{Name: name, Inputs: inputs, Targets: targets}
}
