package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//decodeConfig reads a json config, or a yaml one when the file name ends with .yaml or .yml.
func decodeConfig(srcConfig string, out interface{}) (err error) {
	file, err := os.Open(srcConfig)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	switch strings.ToLower(filepath.Ext(srcConfig)) {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(out)
	default:
		decoder := json.NewDecoder(file)
		decoder.DisallowUnknownFields()
		err = decoder.Decode(out)
	}
	if err != nil {
		return fmt.Errorf("decode config %s: %w", srcConfig, err)
	}
	return nil
}

type LeavesConfig struct {
	ModelFileName string `json:"filename_model" yaml:"filename_model"`
	// OutputFileName receives one json line per leaf; stdout when empty.
	OutputFileName string `json:"filename_output" yaml:"filename_output"`
}

type GraphConfig struct {
	ModelFileName     string `json:"filename_model" yaml:"filename_model"`
	FigureType        string `json:"figure_type" yaml:"figure_type"`
	PicturesDirectory string `json:"pictures_directory" yaml:"pictures_directory"`
	DumpPrefix        string `json:"dump_prefix" yaml:"dump_prefix"`
}

type UnrollConfig struct {
	// SourceKind is either "csv" or "npy".
	SourceKind string `json:"source_kind" yaml:"source_kind"`
	// SourcePath is a csv file or a directory of npy files.
	SourcePath       string   `json:"source_path" yaml:"source_path"`
	DontUnroll       []string `json:"dont_unroll_columns" yaml:"dont_unroll_columns"`
	OutputDirectory  string   `json:"output_directory" yaml:"output_directory"`
	SkipNonNumerical bool     `json:"skip_non_numerical" yaml:"skip_non_numerical"`
}

func (c GraphConfig) withDefaults() GraphConfig {
	if c.FigureType == "" {
		c.FigureType = "svg"
	}
	if c.PicturesDirectory == "" {
		c.PicturesDirectory = "."
	}
	if c.DumpPrefix == "" {
		c.DumpPrefix = "tree"
	}
	return c
}
