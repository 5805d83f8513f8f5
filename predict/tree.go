package predict

import (
	"math"
	"slices"
)

// TreeOptions contains configuration options for BuildTree.
type TreeOptions struct {
	// MaxDepth bounds the tree depth. Zero means DefaultTreeOptions.MaxDepth.
	MaxDepth int
}

// DefaultTreeOptions contains the default configuration options for BuildTree.
var DefaultTreeOptions = TreeOptions{
	MaxDepth: 10,
}

// TreeNode is a binary decision-tree node: either a leaf holding a majority
// class and its purity, or an internal node splitting on Feature <= Threshold.
// The tree is owned by the training call that produced it and immutable after
// construction.
type TreeNode struct {
	Leaf bool

	// Leaf fields.
	Class  float64
	Purity float64

	// Internal fields. Left receives values <= Threshold.
	Feature   int
	Threshold float64
	Left      *TreeNode
	Right     *TreeNode
}

// BuildTree grows a decision tree by recursively choosing the feature and
// threshold maximizing information gain, with candidate thresholds at
// midpoints between consecutive sorted unique feature values. Construction
// uses an explicit work stack rather than recursion. Growth stops at
// MaxDepth, on pure targets, or when no split improves gain.
func BuildTree(features [][]float64, targets []float64, opts TreeOptions) (*TreeNode, error) {
	dim, err := validateTrainingData(features, targets)
	if err != nil {
		return nil, err
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultTreeOptions.MaxDepth
	}

	root := &TreeNode{}
	indices := make([]int, len(targets))
	for i := range indices {
		indices[i] = i
	}

	type frame struct {
		node    *TreeNode
		indices []int
		depth   int
	}
	stack := []frame{{node: root, indices: indices}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		parentEntropy := entropy(targets, f.indices)
		if f.depth >= maxDepth || parentEntropy == 0 {
			makeLeaf(f.node, targets, f.indices)
			continue
		}

		bestFeature, bestThreshold, bestGain := bestSplit(features, targets, f.indices, dim, parentEntropy)
		if bestGain <= 0 {
			makeLeaf(f.node, targets, f.indices)
			continue
		}

		var left, right []int
		for _, i := range f.indices {
			if features[i][bestFeature] <= bestThreshold {
				left = append(left, i)
			} else {
				right = append(right, i)
			}
		}

		f.node.Feature = bestFeature
		f.node.Threshold = bestThreshold
		f.node.Left = &TreeNode{}
		f.node.Right = &TreeNode{}
		stack = append(stack,
			frame{node: f.node.Left, indices: left, depth: f.depth + 1},
			frame{node: f.node.Right, indices: right, depth: f.depth + 1},
		)
	}
	return root, nil
}

// bestSplit scans every feature's candidate thresholds for the maximum
// information gain over the subset.
func bestSplit(features [][]float64, targets []float64, indices []int, dim int, parentEntropy float64) (feature int, threshold, gain float64) {
	feature = -1
	total := float64(len(indices))

	for f := 0; f < dim; f++ {
		values := make([]float64, 0, len(indices))
		for _, i := range indices {
			values = append(values, features[i][f])
		}
		slices.Sort(values)
		values = slices.Compact(values)

		for v := 1; v < len(values); v++ {
			mid := (values[v-1] + values[v]) / 2

			var left, right []int
			for _, i := range indices {
				if features[i][f] <= mid {
					left = append(left, i)
				} else {
					right = append(right, i)
				}
			}
			if len(left) == 0 || len(right) == 0 {
				continue
			}

			g := parentEntropy -
				float64(len(left))/total*entropy(targets, left) -
				float64(len(right))/total*entropy(targets, right)
			if g > gain {
				gain = g
				feature = f
				threshold = mid
			}
		}
	}
	return feature, threshold, gain
}

// entropy is the Shannon entropy (bits) of the targets at indices.
func entropy(targets []float64, indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	counts := make(map[float64]int)
	for _, i := range indices {
		counts[targets[i]]++
	}
	total := float64(len(indices))
	h := 0.0
	for _, c := range counts {
		p := float64(c) / total
		h -= p * math.Log2(p)
	}
	return h
}

// makeLeaf fills node as a leaf with the majority class and its purity.
// Ties resolve to the smallest class value for determinism.
func makeLeaf(node *TreeNode, targets []float64, indices []int) {
	counts := make(map[float64]int)
	for _, i := range indices {
		counts[targets[i]]++
	}

	var class float64
	best := -1
	for v, c := range counts {
		if c > best || (c == best && v < class) {
			best = c
			class = v
		}
	}

	node.Leaf = true
	node.Class = class
	if len(indices) > 0 {
		node.Purity = float64(best) / float64(len(indices))
	}
}

// Predict walks the tree to the leaf covering x and returns its class.
func (n *TreeNode) Predict(x []float64) float64 {
	node := n
	for !node.Leaf {
		if x[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Class
}

// Depth returns the maximum depth of the tree (a lone leaf has depth 0).
func (n *TreeNode) Depth() int {
	if n.Leaf {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}
