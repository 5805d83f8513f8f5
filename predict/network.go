package predict

import (
	"math"

	"github.com/tessark/cohort/util"
)

// NetworkOptions contains configuration options for TrainNetwork.
type NetworkOptions struct {
	// HiddenLayers lists the hidden layer sizes. Empty means the default
	// single hidden layer.
	HiddenLayers []int
	// LearningRate is the SGD step size. Zero means the default.
	LearningRate float64
	// Epochs is the number of passes over the training set. Zero means the
	// default.
	Epochs int
	// RNG seeds weight initialization. Nil means a fixed-seed RNG, which
	// makes training reproducible by default.
	RNG *util.RNG
}

// DefaultNetworkOptions contains the default configuration options for
// TrainNetwork.
var DefaultNetworkOptions = NetworkOptions{
	HiddenLayers: []int{8},
	LearningRate: 0.5,
	Epochs:       500,
}

// Layer is one fully-connected layer. Weights[j][i] connects input i to
// unit j.
type Layer struct {
	Weights [][]float64
	Biases  []float64
}

// Network is a feed-forward network with sigmoid activation on every layer,
// including the single-unit output.
//
// Inputs are z-score normalized per feature and targets min-max normalized to
// [0,1] during training; the model stores both transforms, so Predict accepts
// raw features and returns target-scale values. Activations are transient
// per-inference scratch state, not part of the model.
type Network struct {
	layers []*Layer

	// Input z-score transform. A zero std marks a constant feature, which
	// normalizes to 0.
	means []float64
	stds  []float64

	// Target min-max transform. Equal bounds mark constant targets; the
	// normalized value is pinned to 0.5 and denormalizes back to the bound.
	targetMin float64
	targetMax float64
}

// TrainNetwork trains the network by online stochastic gradient descent: one
// forward and one backward pass per example per epoch, squared-error loss,
// sigmoid-derivative backpropagation updating weights and biases in place.
// Weights and biases initialize uniformly in [-1,1].
func TrainNetwork(features [][]float64, targets []float64, opts NetworkOptions) (*Network, error) {
	dim, err := validateTrainingData(features, targets)
	if err != nil {
		return nil, err
	}

	hidden := opts.HiddenLayers
	if len(hidden) == 0 {
		hidden = DefaultNetworkOptions.HiddenLayers
	}
	learningRate := opts.LearningRate
	if learningRate <= 0 {
		learningRate = DefaultNetworkOptions.LearningRate
	}
	epochs := opts.Epochs
	if epochs <= 0 {
		epochs = DefaultNetworkOptions.Epochs
	}
	rng := opts.RNG
	if rng == nil {
		rng = util.NewRNG(1)
	}

	nw := &Network{}
	nw.fitInputTransform(features, dim)
	nw.fitTargetTransform(targets)

	sizes := append([]int{dim}, hidden...)
	sizes = append(sizes, 1)
	for l := 1; l < len(sizes); l++ {
		layer := &Layer{
			Weights: make([][]float64, sizes[l]),
			Biases:  make([]float64, sizes[l]),
		}
		for j := range layer.Weights {
			layer.Weights[j] = make([]float64, sizes[l-1])
			rng.FillRange(layer.Weights[j], -1, 1)
			layer.Biases[j] = rng.Range(-1, 1)
		}
		nw.layers = append(nw.layers, layer)
	}

	inputs := make([][]float64, len(features))
	for i, f := range features {
		inputs[i] = nw.normalizeInput(f)
	}
	normTargets := make([]float64, len(targets))
	for i, t := range targets {
		normTargets[i] = nw.normalizeTarget(t)
	}

	for epoch := 0; epoch < epochs; epoch++ {
		for i, in := range inputs {
			activations := nw.forward(in)
			nw.backward(in, activations, normTargets[i], learningRate)
		}
	}
	return nw, nil
}

func (nw *Network) fitInputTransform(features [][]float64, dim int) {
	n := float64(len(features))
	nw.means = make([]float64, dim)
	nw.stds = make([]float64, dim)
	for _, f := range features {
		for d, v := range f {
			nw.means[d] += v
		}
	}
	for d := range nw.means {
		nw.means[d] /= n
	}
	for _, f := range features {
		for d, v := range f {
			nw.stds[d] += (v - nw.means[d]) * (v - nw.means[d])
		}
	}
	for d := range nw.stds {
		nw.stds[d] = math.Sqrt(nw.stds[d] / n)
	}
}

func (nw *Network) fitTargetTransform(targets []float64) {
	nw.targetMin = targets[0]
	nw.targetMax = targets[0]
	for _, t := range targets[1:] {
		nw.targetMin = math.Min(nw.targetMin, t)
		nw.targetMax = math.Max(nw.targetMax, t)
	}
}

func (nw *Network) normalizeInput(x []float64) []float64 {
	out := make([]float64, len(x))
	for d, v := range x {
		if nw.stds[d] == 0 {
			continue
		}
		out[d] = (v - nw.means[d]) / nw.stds[d]
	}
	return out
}

func (nw *Network) normalizeTarget(t float64) float64 {
	span := nw.targetMax - nw.targetMin
	if span == 0 {
		return 0.5
	}
	return (t - nw.targetMin) / span
}

// Denormalize maps a [0,1] network output back to target scale.
func (nw *Network) Denormalize(y float64) float64 {
	return nw.targetMin + y*(nw.targetMax-nw.targetMin)
}

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}

// forward runs the network over a normalized input and returns the
// activations of every layer, input excluded.
func (nw *Network) forward(in []float64) [][]float64 {
	activations := make([][]float64, len(nw.layers))
	prev := in
	for l, layer := range nw.layers {
		out := make([]float64, len(layer.Weights))
		for j, weights := range layer.Weights {
			sum := layer.Biases[j]
			for i, w := range weights {
				sum += w * prev[i]
			}
			out[j] = sigmoid(sum)
		}
		activations[l] = out
		prev = out
	}
	return activations
}

// backward applies one squared-error gradient step for a single example.
func (nw *Network) backward(in []float64, activations [][]float64, target, learningRate float64) {
	// Output delta: (a - y) · a(1-a).
	last := len(nw.layers) - 1
	deltas := make([][]float64, len(nw.layers))
	out := activations[last][0]
	deltas[last] = []float64{(out - target) * out * (1 - out)}

	for l := last - 1; l >= 0; l-- {
		next := nw.layers[l+1]
		deltas[l] = make([]float64, len(nw.layers[l].Weights))
		for j := range deltas[l] {
			var sum float64
			for k, weights := range next.Weights {
				sum += weights[j] * deltas[l+1][k]
			}
			a := activations[l][j]
			deltas[l][j] = sum * a * (1 - a)
		}
	}

	for l, layer := range nw.layers {
		prev := in
		if l > 0 {
			prev = activations[l-1]
		}
		for j, weights := range layer.Weights {
			for i := range weights {
				weights[i] -= learningRate * deltas[l][j] * prev[i]
			}
			layer.Biases[j] -= learningRate * deltas[l][j]
		}
	}
}

// PredictNormalized evaluates the network on a raw feature vector and returns
// the sigmoid output in [0,1].
func (nw *Network) PredictNormalized(x []float64) (float64, error) {
	if len(x) != len(nw.means) {
		return 0, &ErrDimensionMismatch{Expected: len(nw.means), Actual: len(x)}
	}
	activations := nw.forward(nw.normalizeInput(x))
	return activations[len(activations)-1][0], nil
}

// Predict evaluates the network on a raw feature vector in target scale.
func (nw *Network) Predict(x []float64) (float64, error) {
	y, err := nw.PredictNormalized(x)
	if err != nil {
		return 0, err
	}
	return nw.Denormalize(y), nil
}
