// cmd/batch.go - Batch processing command
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/geo_bson/internal/batch"
	"github.com/valpere/geo_bson/internal/input"
	"github.com/valpere/geo_bson/internal/output"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert newline-delimited values or documents",
	Long: `Convert a file of newline-delimited values or documents concurrently. Results are
written one per line in input order; failed lines are logged with their line number
and skipped.

Directions:
  decode   Extended JSON documents to JSON values (default)
  encode   JSON values to Extended JSON documents
  command  JSON shapes to query operator documents

Examples:
  # Decode stored points
  geo-bson batch --kind point --input points.ndjson --output points.json

  # Encode circles with compressed output
  geo-bson batch --kind circle --direction encode --input circles.ndjson --output circles.ndjson.gz --compression

  # Stop on the first bad line
  geo-bson batch --kind polygon --input polygons.ndjson --fail-on-error`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	addKindFlag(batchCmd)
	addIOFlags(batchCmd)

	batchCmd.Flags().String("direction", string(batch.DirectionDecode), "conversion direction (decode, encode, command)")

	// Processing flags
	batchCmd.Flags().Int("concurrency", 8, "number of concurrent workers")
	batchCmd.Flags().Bool("fail-on-error", false, "exit with an error if any line fails")

	viper.BindPFlag("batch.concurrency", batchCmd.Flags().Lookup("concurrency"))
	viper.BindPFlag("batch.fail_on_error", batchCmd.Flags().Lookup("fail-on-error"))
}

func runBatch(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	directionFlag, _ := cmd.Flags().GetString("direction")
	direction := batch.Direction(directionFlag)
	if !direction.IsValid() {
		return fmt.Errorf("invalid direction: %s", directionFlag)
	}

	inputPath, _ := cmd.Flags().GetString("input")
	data, err := env.reader.ReadAll(inputPath)
	if err != nil {
		return err
	}

	lines, err := input.SplitLines(data)
	if err != nil {
		return err
	}

	jobConfig := batch.NewJobConfig()
	jobConfig.Concurrency = env.cfg.Batch.Concurrency
	jobConfig.FailOnError = env.cfg.Batch.FailOnError
	jobConfig.Canonical = env.cfg.Input.Canonical
	job := batch.NewJob(fmt.Sprintf("batch-%d", time.Now().Unix()), env.converter.Kind(), direction, jobConfig)

	env.logger.WithFields(logrus.Fields{
		"job":         job.ID,
		"kind":        job.Kind,
		"direction":   job.Direction,
		"lines":       len(lines),
		"concurrency": jobConfig.Concurrency,
	}).Info("starting batch")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	processor := batch.NewBatchProcessor(env.converter, batch.NewLogReporter(env.logger))
	results, procErr := processor.Process(ctx, job, batch.NewWorkItems(lines))
	if !job.IsComplete() {
		return fmt.Errorf("batch did not run: %w", procErr)
	}
	if job.Status == batch.JobStatusCanceled {
		return fmt.Errorf("batch canceled: %w", procErr)
	}

	values := make([]interface{}, 0, len(results))
	for _, result := range results {
		if result.Error == nil {
			values = append(values, result.Value)
		}
	}

	format := output.FormatExtJSON
	if direction == batch.DirectionDecode {
		format = output.FormatJSON
	}

	writer, err := env.newWriter(cmd, format, env.cfg.Output.Pretty)
	if err != nil {
		return err
	}
	if err := env.finish(writer, values...); err != nil {
		return err
	}

	stats := job.Progress.Stats(*job.CompletedAt)
	env.logger.WithFields(logrus.Fields{
		"converted": stats.Converted,
		"failed":    stats.Failed,
		"duration":  stats.EndTime.Sub(stats.StartTime).Round(time.Millisecond),
	}).Debug("batch written")

	if job.Status == batch.JobStatusFailed {
		return fmt.Errorf("batch failed: %d of %d lines could not be converted", stats.Failed, stats.Total)
	}
	return nil
}
