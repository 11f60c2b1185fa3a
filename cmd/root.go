// cmd/root.go - Root command implementation
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "geo-bson",
	Short: "Convert geometric values to and from MongoDB documents",
	Long: `geo-bson converts geometric values (points, boxes, circles, spheres, polygons
and GeoJSON geometries) to the document shapes stored in MongoDB, reads them back,
and builds the legacy geo query operators ($box, $center, $polygon, $centerSphere).

Values are read as JSON, documents as MongoDB Extended JSON. Whole numbers stored
as int32 or int64 are accepted anywhere a coordinate or radius is expected.

Examples:
  # Encode a circle with a radius in miles
  echo '{"center":{"x":1,"y":2},"radius":{"value":3,"metric":"MILES"}}' | geo-bson encode --kind circle

  # Decode a stored sphere
  geo-bson decode --kind sphere --input sphere.json

  # Build a $box operator from coordinates
  geo-bson command --kind box --coords "-74.0,40.7,-73.9,40.8"

  # Decode a file of newline-delimited documents
  geo-bson batch --kind point --input points.ndjson --output points.json

  # Use configuration file
  geo-bson decode --config config.yaml --kind polygon --input polygon.json`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.geo-bson.yaml)")

	// Input flags
	rootCmd.PersistentFlags().Bool("canonical-input", false, "parse input documents as canonical Extended JSON")

	// Output flags
	rootCmd.PersistentFlags().Bool("pretty", false, "pretty print output")
	rootCmd.PersistentFlags().Bool("canonical", false, "write canonical Extended JSON")
	rootCmd.PersistentFlags().Bool("compression", false, "gzip output files")

	// Logging flags
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	// Bind flags to viper
	viper.BindPFlag("input.canonical", rootCmd.PersistentFlags().Lookup("canonical-input"))
	viper.BindPFlag("output.pretty", rootCmd.PersistentFlags().Lookup("pretty"))
	viper.BindPFlag("output.canonical", rootCmd.PersistentFlags().Lookup("canonical"))
	viper.BindPFlag("output.compression", rootCmd.PersistentFlags().Lookup("compression"))
	viper.BindPFlag("logging.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".geo-bson" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".geo-bson")
	}

	// Environment variables
	viper.SetEnvPrefix("GEO_BSON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("logging.verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
