// cmd/encode.go - Value to document conversion command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valpere/geo_bson/internal/output"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Convert a JSON value into its stored document",
	Long: `Convert a JSON value into the document MongoDB stores for it, written as
Extended JSON.

Value forms:
  point    {"x":1,"y":2}
  box      {"first":{"x":1,"y":2},"second":{"x":3,"y":4}}
  circle   {"center":{"x":1,"y":2},"radius":{"value":3,"metric":"KILOMETERS"}}
  sphere   {"center":{"x":1,"y":2},"radius":{"value":3}}
  polygon  {"points":[{"x":1,"y":2},{"x":2,"y":3},{"x":3,"y":4}]}
  geojson  any GeoJSON geometry

Examples:
  geo-bson encode --kind point --input point.json
  echo '{"x":1,"y":2}' | geo-bson encode --kind point --canonical`,
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	addKindFlag(encodeCmd)
	addIOFlags(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	inputPath, _ := cmd.Flags().GetString("input")
	data, err := env.reader.ReadAll(inputPath)
	if err != nil {
		return err
	}

	doc, err := env.converter.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", env.converter.Kind(), err)
	}

	env.logger.WithField("kind", env.converter.Kind()).Debug("value encoded")
	return env.writeOne(cmd, output.FormatExtJSON, doc)
}
