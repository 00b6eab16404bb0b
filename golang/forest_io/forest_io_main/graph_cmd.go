package main

import (
	"github.com/spf13/cobra"
	"github.com/tarstars/forest_io/golang/forest_io/tree"
	"go.uber.org/zap"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render every tree of a forest dump with graphviz",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var graphConfig GraphConfig
		if err := decodeConfig(configPath, &graphConfig); err != nil {
			return err
		}
		return renderGraphs(graphConfig.withDefaults(), logger)
	},
}

func renderGraphs(graphConfig GraphConfig, logger *zap.Logger) error {
	forest, err := tree.ReadForest(graphConfig.ModelFileName)
	if err != nil {
		return err
	}

	fileNames, err := tree.RenderTrees(forest, graphConfig.DumpPrefix, graphConfig.FigureType, graphConfig.PicturesDirectory)
	for _, fileName := range fileNames {
		logger.Debug("tree rendered", zap.String("path", fileName))
	}
	if err != nil {
		return err
	}

	logger.Info("trees rendered", zap.Int("trees", len(fileNames)), zap.String("directory", graphConfig.PicturesDirectory))
	return nil
}
