package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dendrite-ml/dendrite/internal/matrix"
	"github.com/dendrite-ml/dendrite/internal/nn"
)

// Helper to check if values are approximately equal.
func floatEqual(a, b, epsilon float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

func mustFromSlice(t *testing.T, data []float64, rows, cols int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromSlice(data, rows, cols)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	return m
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// TestRandom_Shapes tests layer counts and weight shapes of a random network.
func TestRandom_Shapes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	net, err := nn.Random(rng, 2, 3, 1)
	if err != nil {
		t.Fatalf("Random returned error: %v", err)
	}

	if net.NumLayers() != 3 {
		t.Errorf("NumLayers() = %d, want 3", net.NumLayers())
	}
	if net.InputUnits() != 2 {
		t.Errorf("InputUnits() = %d, want 2", net.InputUnits())
	}
	if net.OutputUnits() != 1 {
		t.Errorf("OutputUnits() = %d, want 1", net.OutputUnits())
	}

	weights := net.Weights()
	if len(weights) != 2 {
		t.Fatalf("len(Weights()) = %d, want 2", len(weights))
	}
	// Weight shapes: [out, in] per layer transition.
	if weights[0].Rows() != 3 || weights[0].Cols() != 2 {
		t.Errorf("weight 0 shape = %dx%d, want 3x2", weights[0].Rows(), weights[0].Cols())
	}
	if weights[1].Rows() != 1 || weights[1].Cols() != 3 {
		t.Errorf("weight 1 shape = %dx%d, want 1x3", weights[1].Rows(), weights[1].Cols())
	}
}

// TestRandom_Errors tests validation of layer sizes.
func TestRandom_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := nn.Random(rng, 2); err == nil {
		t.Error("Random with one layer should return an error")
	}
	if _, err := nn.Random(rng); err == nil {
		t.Error("Random with no layers should return an error")
	}
	if _, err := nn.Random(rng, 2, 0, 1); err == nil {
		t.Error("Random with a zero-unit layer should return an error")
	}
}

// TestGlorotUniform tests the initialization bound.
func TestGlorotUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Bound: sqrt(6) / sqrt(100 + 50) = 0.2
	w := nn.GlorotUniform(rng, 100, 50)

	if w.Rows() != 50 || w.Cols() != 100 {
		t.Fatalf("weight shape = %dx%d, want 50x100", w.Rows(), w.Cols())
	}
	bound := math.Sqrt(6) / math.Sqrt(150)
	for i, v := range w.Data() {
		if math.Abs(v) > bound {
			t.Errorf("value[%d] = %f exceeds bound %f", i, v, bound)
		}
	}
}

// TestNewNetwork_ShapeChain tests that adjacent weights must chain.
func TestNewNetwork_ShapeChain(t *testing.T) {
	w1 := matrix.Zeros(3, 2)
	w2 := matrix.Zeros(1, 3)
	if _, err := nn.NewNetwork(w1, w2); err != nil {
		t.Errorf("chained weights should be accepted: %v", err)
	}

	bad := matrix.Zeros(1, 4)
	if _, err := nn.NewNetwork(w1, bad); err == nil {
		t.Error("broken weight chain should return an error")
	}

	if _, err := nn.NewNetwork(); err == nil {
		t.Error("empty weight list should return an error")
	}
}

// TestSigmoid tests the activation at known points.
func TestSigmoid(t *testing.T) {
	input := mustFromSlice(t, []float64{0, 1, -1}, 3, 1)

	out := nn.Sigmoid(input)

	// σ(0) = 0.5, σ(1) ≈ 0.731, σ(-1) ≈ 0.269
	expected := []float64{0.5, sigmoid(1), sigmoid(-1)}
	for i, want := range expected {
		if !floatEqual(out.Data()[i], want, 1e-9) {
			t.Errorf("Sigmoid[%d] = %f, want %f", i, out.Data()[i], want)
		}
	}
}

// TestSigmoidPrime tests the derivative at known points.
func TestSigmoidPrime(t *testing.T) {
	input := mustFromSlice(t, []float64{0, 2}, 2, 1)

	out := nn.SigmoidPrime(input)

	// σ'(x) = σ(x)(1 - σ(x)); σ'(0) = 0.25.
	expected := []float64{0.25, sigmoid(2) * (1 - sigmoid(2))}
	for i, want := range expected {
		if !floatEqual(out.Data()[i], want, 1e-9) {
			t.Errorf("SigmoidPrime[%d] = %f, want %f", i, out.Data()[i], want)
		}
	}
}

// TestPredict_SingleLayer tests forward propagation with known weights.
func TestPredict_SingleLayer(t *testing.T) {
	// One weight matrix [[1, 1]]: output = σ(x1 + x2).
	w := mustFromSlice(t, []float64{1, 1}, 1, 2)
	net, err := nn.NewNetwork(w)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	// Three samples as columns: (0,0), (1,0), (1,1).
	input := mustFromSlice(t, []float64{
		0, 1, 1,
		0, 0, 1,
	}, 2, 3)

	out := net.Predict(input)

	if out.Rows() != 1 || out.Cols() != 3 {
		t.Fatalf("output shape = %dx%d, want 1x3", out.Rows(), out.Cols())
	}
	expected := []float64{sigmoid(0), sigmoid(1), sigmoid(2)}
	for j, want := range expected {
		if !floatEqual(out.At(0, j), want, 1e-9) {
			t.Errorf("output[%d] = %f, want %f", j, out.At(0, j), want)
		}
	}
}

// TestPredict_TwoLayer tests forward propagation through a hidden layer.
func TestPredict_TwoLayer(t *testing.T) {
	// Identity first layer, summing second layer.
	w1 := mustFromSlice(t, []float64{
		1, 0,
		0, 1,
	}, 2, 2)
	w2 := mustFromSlice(t, []float64{1, 1}, 1, 2)
	net, err := nn.NewNetwork(w1, w2)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	// Single sample (0, 0): hidden = σ(0) = 0.5 per unit, output = σ(1).
	input := mustFromSlice(t, []float64{0, 0}, 2, 1)

	out := net.Predict(input)

	if !floatEqual(out.At(0, 0), sigmoid(1), 1e-9) {
		t.Errorf("output = %f, want %f", out.At(0, 0), sigmoid(1))
	}
}

// TestPredictBinary tests the 0.5 threshold, inclusive at the boundary.
func TestPredictBinary(t *testing.T) {
	// Single 1x1 weight [1]: output = σ(x).
	w := mustFromSlice(t, []float64{1}, 1, 1)
	net, err := nn.NewNetwork(w)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	// σ(-1) < 0.5, σ(0) = 0.5, σ(1) > 0.5.
	input := mustFromSlice(t, []float64{-1, 0, 1}, 1, 3)

	out := net.PredictBinary(input)

	expected := []float64{0, 1, 1}
	for j, want := range expected {
		if out.At(0, j) != want {
			t.Errorf("binary output[%d] = %f, want %f", j, out.At(0, j), want)
		}
	}
}

// TestGradients_Shapes tests that gradients mirror the weight shapes.
func TestGradients_Shapes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	net, err := nn.Random(rng, 2, 4, 3, 1)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	input := mustFromSlice(t, []float64{
		0, 0, 1, 1,
		0, 1, 0, 1,
	}, 2, 4)
	target := mustFromSlice(t, []float64{0, 1, 1, 0}, 1, 4)

	grads := net.Gradients(input, target)

	weights := net.Weights()
	if len(grads) != len(weights) {
		t.Fatalf("len(grads) = %d, want %d", len(grads), len(weights))
	}
	for i, g := range grads {
		if g.Rows() != weights[i].Rows() || g.Cols() != weights[i].Cols() {
			t.Errorf("gradient %d shape = %dx%d, want %dx%d",
				i, g.Rows(), g.Cols(), weights[i].Rows(), weights[i].Cols())
		}
	}
}

// TestGradients_FiniteDifference checks backpropagation against a central
// finite difference of the loss for every weight entry.
func TestGradients_FiniteDifference(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	net, err := nn.Random(rng, 2, 3, 2)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	input := mustFromSlice(t, []float64{
		0.1, 0.9,
		0.4, 0.6,
	}, 2, 2)
	target := mustFromSlice(t, []float64{
		0, 1,
		1, 0,
	}, 2, 2)

	// The loss whose gradient Gradients computes:
	// sum over outputs and samples of (prediction - target)², divided by
	// the batch size.
	loss := func() float64 {
		diff := net.Predict(input).Sub(target)
		var sum float64
		for _, v := range diff.Data() {
			sum += v * v
		}
		return sum / float64(input.Cols())
	}

	grads := net.Gradients(input, target)

	const h = 1e-6
	for k, w := range net.Weights() {
		for i := 0; i < w.Rows(); i++ {
			for j := 0; j < w.Cols(); j++ {
				orig := w.At(i, j)

				w.Set(i, j, orig+h)
				lossPlus := loss()
				w.Set(i, j, orig-h)
				lossMinus := loss()
				w.Set(i, j, orig)

				numerical := (lossPlus - lossMinus) / (2 * h)
				analytic := grads[k].At(i, j)
				if !floatEqual(analytic, numerical, 1e-6) {
					t.Errorf("gradient[%d](%d, %d) = %g, finite difference = %g",
						k, i, j, analytic, numerical)
				}
			}
		}
	}
}

// TestTrain_ReducesLoss tests that gradient descent lowers the MSE on XOR.
func TestTrain_ReducesLoss(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	net, err := nn.Random(rng, 2, 4, 1)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	input := mustFromSlice(t, []float64{
		0, 0, 1, 1,
		0, 1, 0, 1,
	}, 2, 4)
	target := mustFromSlice(t, []float64{0, 1, 1, 0}, 1, 4)

	before := nn.MSE(net.Predict(input), target)
	net.Train(input, target, 200, 0.1)
	after := nn.MSE(net.Predict(input), target)

	if after >= before {
		t.Errorf("loss did not decrease: before=%f after=%f", before, after)
	}
}

// TestTrain_UpdatesInPlace tests that training mutates the weight matrices
// the network was constructed with.
func TestTrain_UpdatesInPlace(t *testing.T) {
	w := mustFromSlice(t, []float64{0.5, -0.5}, 1, 2)
	net, err := nn.NewNetwork(w)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}

	input := mustFromSlice(t, []float64{1, 0, 0, 1}, 2, 2)
	target := mustFromSlice(t, []float64{1, 0}, 1, 2)

	before := w.Clone()
	net.Train(input, target, 5, 0.5)

	changed := false
	for i, v := range w.Data() {
		if v != before.Data()[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("Train should update the weight matrix in place")
	}
}

// TestMSE tests the loss against a hand-computed value.
func TestMSE(t *testing.T) {
	predictions := mustFromSlice(t, []float64{1, 2, 3}, 1, 3)
	targets := mustFromSlice(t, []float64{1, 1, 1}, 1, 3)

	// mean(0² + 1² + 2²) = 5/3
	got := nn.MSE(predictions, targets)
	want := 5.0 / 3.0
	if !floatEqual(got, want, 1e-9) {
		t.Errorf("MSE = %f, want %f", got, want)
	}
}
