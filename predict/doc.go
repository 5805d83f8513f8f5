// Package predict provides the supervised-learning routines of cohort:
// regularized linear regression, information-gain decision trees, a small
// sigmoid feed-forward network, and a weighted-average ensemble of the three.
//
// # Models
//
//   - Ridge: normal equations (XᵗX + αI)w = Xᵗy solved by Gaussian
//     elimination with partial pivoting
//   - BuildTree: binary splits maximizing information gain, bounded by an
//     explicit work stack and a depth limit
//   - TrainNetwork: online SGD with sigmoid backpropagation over z-score
//     normalized inputs and min-max normalized targets
//   - Ensemble: fixed weighted average with agreement-derived confidence
//
// Training is a best-effort heuristic for the tree and the network; neither
// guarantees a global optimum. All randomness flows through an injectable
// seeded RNG, so training is reproducible.
package predict
