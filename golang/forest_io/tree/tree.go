// Package tree reads forest dumps and decodes the values stored in their leaves.
package tree

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tarstars/forest_io/golang/forest_io/leaf"
)

//TreeNode is a node of a tree. Tree is stored in an array. LeftIndex and RightIndex are equal to -1
//when the current node is a leaf otherwise they contain array indices of children.
//A leaf node contains LeafIndex that is an index of the LeafNodes array.
type TreeNode struct {
	TreeNodeId            int
	FeatureNumber         int
	Threshold             float64
	LeftIndex, RightIndex int // -1, -1 if it is a leaf
	LeafIndex             int // -1 if it is a non-leaf tree node
	NumberOfObjects       int
}

//IsLeaf returns whether this node is a LeafNode.
func (node TreeNode) IsLeaf() bool {
	return node.LeafIndex != -1
}

//GraphDescription returns the description of a tree node for tree rendering as a graph
func (node TreeNode) GraphDescription() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintln("#", node.NumberOfObjects))
	sb.WriteString(fmt.Sprintln("id: ", node.TreeNodeId))
	sb.WriteString(fmt.Sprintf("f_%d < %6.5f", node.FeatureNumber, node.Threshold))
	return sb.String()
}

//LeafNode stores the label statistics recorded in a leaf.
type LeafNode struct {
	LeafNodeId int
	Record     leaf.Node
}

//OneTree describes one tree of a forest.
type OneTree struct {
	TreeNodes []TreeNode
	LeafNodes []LeafNode
}

//Forest is a sequence of trees.
type Forest struct {
	Trees []OneTree
}

//LoadForest decodes a JSON forest dump and validates every tree.
func LoadForest(r io.Reader) (*Forest, error) {
	var forest Forest
	if err := json.NewDecoder(r).Decode(&forest); err != nil {
		return nil, fmt.Errorf("decode forest: %w", err)
	}
	for ind, oneTree := range forest.Trees {
		if err := oneTree.Validate(); err != nil {
			return nil, fmt.Errorf("tree %d: %w", ind, err)
		}
	}
	return &forest, nil
}

//ReadForest reads a forest dump from a file.
func ReadForest(fileName string) (forest *Forest, err error) {
	source, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := source.Close(); err == nil {
			err = closeErr
		}
	}()
	return LoadForest(source)
}

//Validate checks that the nodes reachable from the root form a tree with valid leaf indices.
func (oneTree OneTree) Validate() error {
	if len(oneTree.TreeNodes) == 0 {
		return fmt.Errorf("tree has no nodes")
	}

	visited := make([]bool, len(oneTree.TreeNodes))
	stack := []int{0}
	for len(stack) > 0 {
		ind := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if ind < 0 || ind >= len(oneTree.TreeNodes) {
			return fmt.Errorf("node index %d out of range", ind)
		}
		if visited[ind] {
			return fmt.Errorf("node %d is reached twice", ind)
		}
		visited[ind] = true

		node := oneTree.TreeNodes[ind]
		if node.IsLeaf() {
			if node.LeafIndex < 0 || node.LeafIndex >= len(oneTree.LeafNodes) {
				return fmt.Errorf("node %d: leaf index %d out of range", ind, node.LeafIndex)
			}
			continue
		}
		stack = append(stack, node.RightIndex, node.LeftIndex)
	}
	return nil
}

//LeafValues decodes the value of every leaf, in LeafNodes order.
func (oneTree OneTree) LeafValues() ([]leaf.Value, error) {
	values := make([]leaf.Value, len(oneTree.LeafNodes))
	for ind := range oneTree.LeafNodes {
		value, err := leaf.Decode(&oneTree.LeafNodes[ind].Record)
		if err != nil {
			return nil, fmt.Errorf("leaf %d: %w", oneTree.LeafNodes[ind].LeafNodeId, err)
		}
		values[ind] = value
	}
	return values, nil
}

//GetLeafDescription returns the description of the leaf reached at tree node ind.
func (oneTree OneTree) GetLeafDescription(ind int) (string, error) {
	leafNode := oneTree.LeafNodes[oneTree.TreeNodes[ind].LeafIndex]
	value, err := leaf.Decode(&leafNode.Record)
	if err != nil {
		return "", fmt.Errorf("leaf %d: %w", leafNode.LeafNodeId, err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintln("id: ", leafNode.LeafNodeId))
	sb.WriteString(value.String())
	return sb.String(), nil
}

//GetNodeDescription returns the description of a tree node
func (oneTree OneTree) GetNodeDescription(ind int) string {
	return oneTree.TreeNodes[ind].GraphDescription()
}
