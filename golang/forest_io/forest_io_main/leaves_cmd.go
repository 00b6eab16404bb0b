package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tarstars/forest_io/golang/forest_io/leaf"
	"github.com/tarstars/forest_io/golang/forest_io/tree"
	"go.uber.org/zap"
)

var leavesCmd = &cobra.Command{
	Use:   "leaves",
	Short: "Decode the value of every leaf of a forest dump as json lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var leavesConfig LeavesConfig
		if err := decodeConfig(configPath, &leavesConfig); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if leavesConfig.OutputFileName != "" {
			dst, createErr := os.Create(leavesConfig.OutputFileName)
			if createErr != nil {
				return createErr
			}
			defer func() {
				if closeErr := dst.Close(); err == nil {
					err = closeErr
				}
			}()
			out = dst
		}
		return dumpLeaves(leavesConfig, out, logger)
	},
}

type leafRecord struct {
	Tree  int        `json:"tree"`
	Leaf  int        `json:"leaf"`
	Kind  string     `json:"kind"`
	Value leaf.Value `json:"value"`
}

func dumpLeaves(leavesConfig LeavesConfig, out io.Writer, logger *zap.Logger) error {
	logger.Info("load model", zap.String("path", leavesConfig.ModelFileName))
	forest, err := tree.ReadForest(leavesConfig.ModelFileName)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	numLeaves := 0
	for treeInd, oneTree := range forest.Trees {
		values, err := oneTree.LeafValues()
		if err != nil {
			return fmt.Errorf("tree %d: %w", treeInd, err)
		}
		for leafInd, value := range values {
			record := leafRecord{
				Tree:  treeInd,
				Leaf:  oneTree.LeafNodes[leafInd].LeafNodeId,
				Kind:  value.Kind().String(),
				Value: value,
			}
			if err := encoder.Encode(record); err != nil {
				return err
			}
		}
		numLeaves += len(values)
		logger.Debug("tree decoded", zap.Int("tree", treeInd), zap.Int("leaves", len(values)))
	}

	logger.Info("leaves decoded", zap.Int("trees", len(forest.Trees)), zap.Int("leaves", numLeaves))
	return nil
}
