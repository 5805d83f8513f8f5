package predict

// DefaultEnsembleWeights weight the ridge, tree, and network members in that
// order.
var DefaultEnsembleWeights = [3]float64{0.4, 0.3, 0.3}

// Ensemble averages a ridge model, a decision tree, and a network with fixed
// weights.
type Ensemble struct {
	ridge   *RidgeModel
	tree    *TreeNode
	network *Network
	weights [3]float64
}

// EnsembleOptions contains configuration options for NewEnsemble.
type EnsembleOptions struct {
	// Weights are the member weights (ridge, tree, network). A zero value
	// means DefaultEnsembleWeights.
	Weights [3]float64
}

// NewEnsemble combines three trained members into a weighted-average
// ensemble.
func NewEnsemble(ridge *RidgeModel, tree *TreeNode, network *Network, opts EnsembleOptions) (*Ensemble, error) {
	if ridge == nil || tree == nil || network == nil {
		return nil, ErrNoTrainingData
	}
	weights := opts.Weights
	if weights == [3]float64{} {
		weights = DefaultEnsembleWeights
	}
	return &Ensemble{
		ridge:   ridge,
		tree:    tree,
		network: network,
		weights: weights,
	}, nil
}

// Predict evaluates all members on x and returns their weighted average.
//
// Confidence is derived from member agreement: 1/(1 + variance of the three
// member predictions), so unanimous members score 1 and diverging members
// decay toward 0. Factors rank each member's weighted contribution.
func (e *Ensemble) Predict(x []float64) (*Prediction, error) {
	ridgeValue, err := e.ridge.Predict(x)
	if err != nil {
		return nil, err
	}
	treeValue := e.tree.Predict(x)
	networkValue, err := e.network.Predict(x)
	if err != nil {
		return nil, err
	}

	members := [3]float64{ridgeValue, treeValue, networkValue}
	var totalWeight, value float64
	for i, w := range e.weights {
		totalWeight += w
		value += w * members[i]
	}
	if totalWeight > 0 {
		value /= totalWeight
	}

	mean := (members[0] + members[1] + members[2]) / 3
	var spread float64
	for _, m := range members {
		spread += (m - mean) * (m - mean)
	}
	spread /= 3

	factors := rankFactors([]Factor{
		{Name: "ridge", Impact: e.weights[0] * members[0]},
		{Name: "tree", Impact: e.weights[1] * members[1]},
		{Name: "network", Impact: e.weights[2] * members[2]},
	})

	return &Prediction{
		Value:      value,
		Confidence: 1 / (1 + spread),
		Factors:    factors,
		Model:      "ensemble",
	}, nil
}
