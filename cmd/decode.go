// cmd/decode.go - Document to value conversion command
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/valpere/geo_bson/internal/input"
	"github.com/valpere/geo_bson/internal/output"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Convert a stored document back into a JSON value",
	Long: `Convert an Extended JSON document into the value it stores. The kind must be
given because circle and sphere documents have the same shape.

Examples:
  geo-bson decode --kind circle --input circle.json
  echo '{"x":{"$numberLong":"1"},"y":2}' | geo-bson decode --kind point`,
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	addKindFlag(decodeCmd)
	addIOFlags(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	inputPath, _ := cmd.Flags().GetString("input")
	data, err := env.reader.ReadAll(inputPath)
	if err != nil {
		return err
	}

	doc, err := input.ParseDocument(data, env.cfg.Input.Canonical)
	if err != nil {
		return err
	}

	value, err := env.converter.Decode(doc)
	if err != nil {
		return err
	}

	env.logger.WithField("kind", env.converter.Kind()).Debug("document decoded")
	return env.writeOne(cmd, output.FormatJSON, value)
}
