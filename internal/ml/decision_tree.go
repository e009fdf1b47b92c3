package ml

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

const maxTreeDepth = 256

// TreeNode is a split or leaf of an exported decision tree. Numeric splits
// send values <= Threshold left; categorical splits send case-insensitive
// matches of Equals left.
type TreeNode struct {
	Feature   string    `json:"feature,omitempty"`
	Threshold *float64  `json:"threshold,omitempty"`
	Equals    *string   `json:"equals,omitempty"`
	Left      *TreeNode `json:"left,omitempty"`
	Right     *TreeNode `json:"right,omitempty"`
	Label     string    `json:"label,omitempty"`
}

func (n *TreeNode) leaf() bool {
	return n.Left == nil && n.Right == nil
}

// DecisionTree is the exported category classifier artifact
type DecisionTree struct {
	FeatureNames []string  `json:"feature_names"`
	Classes      []string  `json:"classes,omitempty"`
	Root         *TreeNode `json:"root"`
}

var (
	_ CategoryPredictor = (*DecisionTree)(nil)
	_ ColumnSchema      = (*DecisionTree)(nil)
)

// LoadDecisionTree reads a tree exported as JSON
func LoadDecisionTree(path string) (*DecisionTree, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier artifact: %w", err)
	}
	return ParseDecisionTree(content)
}

func ParseDecisionTree(content []byte) (*DecisionTree, error) {
	var tree DecisionTree
	if err := json.Unmarshal(content, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode classifier artifact: %w", err)
	}
	if tree.Root == nil {
		return nil, errors.New("classifier artifact has no root node")
	}
	return &tree, nil
}

func (t *DecisionTree) ExpectedColumns() []string {
	if len(t.FeatureNames) == 0 {
		return nil
	}
	return append([]string(nil), t.FeatureNames...)
}

func (t *DecisionTree) PredictOne(row FeatureRow) (string, error) {
	node := t.Root
	for depth := 0; node != nil; depth++ {
		if depth > maxTreeDepth {
			return "", errors.New("decision tree exceeds maximum depth")
		}
		if node.leaf() {
			if node.Label == "" {
				return "", errors.New("decision tree leaf has no label")
			}
			return node.Label, nil
		}

		value, _ := row.Get(node.Feature)
		left, err := node.goesLeft(value)
		if err != nil {
			return "", err
		}
		if left {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return "", errors.New("decision tree branch is missing a child")
}

func (n *TreeNode) goesLeft(v FeatureValue) (bool, error) {
	switch {
	case n.Equals != nil:
		return strings.EqualFold(strings.TrimSpace(v.String()), strings.TrimSpace(*n.Equals)), nil
	case n.Threshold != nil:
		return v.Float() <= *n.Threshold, nil
	default:
		return false, fmt.Errorf("split on %q has neither threshold nor equals", n.Feature)
	}
}
