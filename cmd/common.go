// cmd/common.go - Shared command setup
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/valpere/geo_bson/internal"
	"github.com/valpere/geo_bson/internal/config"
	"github.com/valpere/geo_bson/internal/convert"
	"github.com/valpere/geo_bson/internal/input"
	"github.com/valpere/geo_bson/internal/logging"
	"github.com/valpere/geo_bson/internal/output"
)

// appFs is the filesystem used for input and output files
var appFs = afero.NewOsFs()

// environment bundles what every conversion command needs
type environment struct {
	cfg       *config.Config
	logger    *logrus.Logger
	converter *convert.Converter
	reader    *input.Reader
}

func newEnvironment(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	kind, _ := cmd.Flags().GetString("kind")
	converter, err := convert.NewConverter(internal.ValueKind(kind))
	if err != nil {
		return nil, err
	}

	return &environment{
		cfg:       cfg,
		logger:    logger,
		converter: converter,
		reader:    input.NewReader(appFs, cmd.InOrStdin()),
	}, nil
}

// newWriter opens the output destination named by the --output flag
func (e *environment) newWriter(cmd *cobra.Command, format output.Format, pretty bool) (output.Writer, error) {
	outputPath, _ := cmd.Flags().GetString("output")
	writer, err := output.NewWriter(appFs, &output.WriterConfig{
		Format:      format,
		Pretty:      pretty,
		Canonical:   e.cfg.Output.Canonical,
		Compression: e.cfg.Output.Compression,
	}, outputPath, cmd.OutOrStdout())
	if err != nil {
		return nil, fmt.Errorf("failed to create writer: %w", err)
	}
	return writer, nil
}

// writeOne writes a single result and closes the writer
func (e *environment) writeOne(cmd *cobra.Command, format output.Format, v interface{}) error {
	writer, err := e.newWriter(cmd, format, e.cfg.Output.Pretty)
	if err != nil {
		return err
	}
	return e.finish(writer, v)
}

// finish writes values, closes writer and logs the written file
func (e *environment) finish(writer output.Writer, values ...interface{}) error {
	if err := output.WriteAndClose(writer, values...); err != nil {
		return err
	}

	if file, ok := writer.(*output.FileWriter); ok {
		e.logger.WithFields(logrus.Fields{
			"file":  file.Name(),
			"bytes": file.Size(),
		}).Info("output written")
	}
	return nil
}

func addKindFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("kind", "k", "", fmt.Sprintf("value kind %v", internal.ValueKinds))
	cmd.MarkFlagRequired("kind")
}

func addIOFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "input file path (default: stdin)")
	cmd.Flags().StringP("output", "o", "", "output file path (default: stdout)")
}
