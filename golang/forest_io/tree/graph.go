package tree

import (
	"fmt"
	"io"
	"path"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

var graphvizFormats = map[string]graphviz.Format{
	"png": graphviz.PNG,
	"svg": graphviz.SVG,
	"jpg": graphviz.JPG,
	"dot": graphviz.XDOT,
}

//GraphvizFormat maps a figure type to a graphviz format.
func GraphvizFormat(figureType string) (graphviz.Format, error) {
	format, ok := graphvizFormats[figureType]
	if !ok {
		return "", fmt.Errorf("unknown figure type %q", figureType)
	}
	return format, nil
}

func recurrentDraw(g *cgraph.Graph, oneTree OneTree, nodeNumber int, parentNode *cgraph.Node) error {
	currentNode, err := g.CreateNode(fmt.Sprint(oneTree.TreeNodes[nodeNumber].TreeNodeId))
	if err != nil {
		return err
	}

	if parentNode != nil {
		if _, err := g.CreateEdge("", parentNode, currentNode); err != nil {
			return err
		}
	}

	if oneTree.TreeNodes[nodeNumber].IsLeaf() {
		description, err := oneTree.GetLeafDescription(nodeNumber)
		if err != nil {
			return err
		}
		currentNode.Set("label", description)
		currentNode.Set("shape", "box")
		return nil
	}

	currentNode.Set("label", oneTree.GetNodeDescription(nodeNumber))
	if err := recurrentDraw(g, oneTree, oneTree.TreeNodes[nodeNumber].LeftIndex, currentNode); err != nil {
		return err
	}
	return recurrentDraw(g, oneTree, oneTree.TreeNodes[nodeNumber].RightIndex, currentNode)
}

//DrawGraph builds the graph of a tree. Leaves are labelled with their decoded value.
//The caller closes both returned objects.
func (oneTree OneTree) DrawGraph() (*graphviz.Graphviz, *cgraph.Graph, error) {
	if err := oneTree.Validate(); err != nil {
		return nil, nil, err
	}

	graphViz := graphviz.New()
	graph, err := graphViz.Graph()
	if err != nil {
		_ = graphViz.Close()
		return nil, nil, err
	}

	if err := recurrentDraw(graph, oneTree, 0, nil); err != nil {
		_ = graph.Close()
		_ = graphViz.Close()
		return nil, nil, err
	}
	return graphViz, graph, nil
}

//Render writes the picture of a tree.
func (oneTree OneTree) Render(w io.Writer, figureType string) error {
	format, err := GraphvizFormat(figureType)
	if err != nil {
		return err
	}

	graphViz, graph, err := oneTree.DrawGraph()
	if err != nil {
		return err
	}
	defer func() {
		_ = graph.Close()
		_ = graphViz.Close()
	}()

	return graphViz.Render(graph, format, w)
}

//RenderTrees writes one picture per tree into picturesDirectory and returns the file names.
func RenderTrees(forest *Forest, dumpPrefix, figureType, picturesDirectory string) ([]string, error) {
	format, err := GraphvizFormat(figureType)
	if err != nil {
		return nil, err
	}

	var fileNames []string
	for graphInd, currentTree := range forest.Trees {
		filename := path.Join(picturesDirectory, fmt.Sprintf("%s_%05d.%s", dumpPrefix, graphInd, figureType))
		graphViz, graph, err := currentTree.DrawGraph()
		if err != nil {
			return fileNames, fmt.Errorf("tree %d: %w", graphInd, err)
		}
		err = graphViz.RenderFilename(graph, format, filename)
		_ = graph.Close()
		_ = graphViz.Close()
		if err != nil {
			return fileNames, fmt.Errorf("tree %d: %w", graphInd, err)
		}
		fileNames = append(fileNames, filename)
	}
	return fileNames, nil
}
