package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tarstars/forest_io/golang/forest_io/dataset"
	"github.com/tarstars/forest_io/golang/forest_io/frame"
	"github.com/tarstars/forest_io/golang/forest_io/tensorset"
	"go.uber.org/zap"
)

var unrollCmd = &cobra.Command{
	Use:   "unroll",
	Short: "Split the multi-dimensional features of a dataset into npy files of single features",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var unrollConfig UnrollConfig
		if err := decodeConfig(configPath, &unrollConfig); err != nil {
			return err
		}
		_, err := unrollDataset(unrollConfig, logger)
		return err
	},
}

func loadSource(unrollConfig UnrollConfig) (interface{}, error) {
	switch unrollConfig.SourceKind {
	case "csv":
		source, err := os.Open(unrollConfig.SourcePath)
		if err != nil {
			return nil, err
		}
		defer source.Close()
		return frame.ReadCSV(source)
	case "npy":
		return tensorset.ReadDir(unrollConfig.SourcePath)
	}
	return nil, fmt.Errorf("unknown source kind %q, expected csv or npy", unrollConfig.SourceKind)
}

//unrollDataset writes every unrolled column to <output_directory>/<column>.npy and returns
//the written file names.
func unrollDataset(unrollConfig UnrollConfig, logger *zap.Logger) ([]string, error) {
	logger.Info("load dataset", zap.String("kind", unrollConfig.SourceKind), zap.String("path", unrollConfig.SourcePath))
	data, err := loadSource(unrollConfig)
	if err != nil {
		return nil, err
	}

	columns, err := dataset.Cast(data, unrollConfig.DontUnroll)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(unrollConfig.OutputDirectory, 0o755); err != nil {
		return nil, err
	}

	var fileNames []string
	for _, name := range columns.Names() {
		value := columns[name]
		if _, ok := value.([]string); ok {
			if unrollConfig.SkipNonNumerical {
				logger.Warn("skip non numerical column", zap.String("column", name))
				continue
			}
			return fileNames, fmt.Errorf("column %q is not numerical", name)
		}

		fileName := filepath.Join(unrollConfig.OutputDirectory, name+".npy")
		if err := tensorset.WriteNpy(fileName, value); err != nil {
			return fileNames, fmt.Errorf("column %q: %w", name, err)
		}
		logger.Debug("column written", zap.String("column", name), zap.String("path", fileName))
		fileNames = append(fileNames, fileName)
	}

	logger.Info("dataset unrolled", zap.Int("columns", len(fileNames)), zap.String("directory", unrollConfig.OutputDirectory))
	return fileNames, nil
}
