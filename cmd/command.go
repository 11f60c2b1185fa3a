// cmd/command.go - Geo query operator command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/valpere/geo_bson/internal/convert"
	"github.com/valpere/geo_bson/internal/output"
	"github.com/valpere/geo_bson/pkg/geo"
	"github.com/valpere/geo_bson/pkg/geoconv"
)

// commandCmd represents the command command
var commandCmd = &cobra.Command{
	Use:   "command",
	Short: "Build the query operator document for a shape",
	Long: `Build the legacy geo query operator for a shape: $box, $center, $polygon or
$centerSphere. GeoJSON geometries produce a $geometry operand. Radii in kilometers
or miles are converted to radians.

The shape is read as JSON from --input (or stdin), or built from --coords:
  box      x1,y1,x2,y2
  circle   x,y,radius
  sphere   x,y,radius
  polygon  x1,y1,x2,y2,x3,y3,...

Examples:
  geo-bson command --kind box --coords "-74.0,40.7,-73.9,40.8"
  geo-bson command --kind sphere --coords "-73.99,40.73,5" --metric km
  geo-bson command --kind polygon --input polygon.json`,
	RunE: runCommand,
}

func init() {
	rootCmd.AddCommand(commandCmd)
	addKindFlag(commandCmd)
	addIOFlags(commandCmd)

	commandCmd.Flags().String("coords", "", "comma separated shape coordinates")
	commandCmd.Flags().String("metric", "", "radius metric for --coords (km, mi)")

	commandCmd.MarkFlagsMutuallyExclusive("coords", "input")
}

func runCommand(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	coords, _ := cmd.Flags().GetString("coords")

	var doc bson.D
	if coords != "" {
		doc, err = commandFromCoordinates(cmd, env, coords)
	} else {
		inputPath, _ := cmd.Flags().GetString("input")
		var data []byte
		data, err = env.reader.ReadAll(inputPath)
		if err != nil {
			return err
		}
		doc, err = env.converter.Command(data)
	}
	if err != nil {
		return fmt.Errorf("failed to build %s command: %w", env.converter.Kind(), err)
	}

	env.logger.WithField("operator", doc[0].Key).Debug("command built")
	return env.writeOne(cmd, output.FormatExtJSON, doc)
}

func commandFromCoordinates(cmd *cobra.Command, env *environment, coords string) (bson.D, error) {
	values, err := convert.ParseCoordinates(coords)
	if err != nil {
		return nil, err
	}

	metric := geo.Neutral
	if name, _ := cmd.Flags().GetString("metric"); name != "" {
		if metric, err = geo.ParseMetric(name); err != nil {
			return nil, err
		}
	}

	shape, err := convert.ShapeFromCoordinates(env.converter.Kind(), values, metric)
	if err != nil {
		return nil, err
	}
	return geoconv.EncodeGeoCommand(geo.NewGeoCommand(shape))
}
