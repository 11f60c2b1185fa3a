// internal/batch/processor.go - Batch processing implementation
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/multierr"

	"github.com/valpere/geo_bson/internal/convert"
	"github.com/valpere/geo_bson/internal/input"
)

// BatchProcessor converts the lines of a job concurrently
type BatchProcessor struct {
	converter *convert.Converter
	reporter  ProgressReporter
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(converter *convert.Converter, reporter ProgressReporter) *BatchProcessor {
	return &BatchProcessor{
		converter: converter,
		reporter:  reporter,
	}
}

// Process converts every work item and returns the results in input order.
// Failed items are reported and aggregated into the returned error; with
// FailOnError the job is marked failed, otherwise it completes.
func (bp *BatchProcessor) Process(ctx context.Context, job *Job, items []*WorkItem) ([]*WorkResult, error) {
	if !job.Direction.IsValid() {
		return nil, fmt.Errorf("invalid direction: %s", job.Direction)
	}

	now := time.Now()
	job.Status = JobStatusRunning
	job.StartedAt = &now
	job.Progress.StartTime = now
	job.Progress.TotalItems = int64(len(items))

	mapper := iter.Mapper[*WorkItem, *WorkResult]{MaxGoroutines: job.Config.Concurrency}
	results := mapper.Map(items, func(item **WorkItem) *WorkResult {
		return bp.processItem(ctx, job, *item)
	})

	var errs error
	for _, result := range results {
		if result.Error == nil {
			job.Progress.SuccessItems++
			continue
		}
		job.Progress.FailedItems++
		errs = multierr.Append(errs, errors.Wrapf(result.Error, "line %d", result.Item.Line.Number))
		if bp.reporter != nil {
			bp.reporter.ReportItemFailed(job, result)
		}
	}
	job.Progress.UpdateThroughput()

	completed := time.Now()
	job.CompletedAt = &completed

	if ctxErr := ctx.Err(); ctxErr != nil {
		job.Status = JobStatusCanceled
		job.Error = ctxErr
		return results, ctxErr
	}

	if errs != nil && job.Config.FailOnError {
		job.Status = JobStatusFailed
		job.Error = errs
		if bp.reporter != nil {
			bp.reporter.ReportJobFailed(job, errs)
		}
		return results, errs
	}

	job.Status = JobStatusCompleted
	job.Error = errs
	if bp.reporter != nil {
		bp.reporter.ReportJobComplete(job)
	}
	return results, errs
}

func (bp *BatchProcessor) processItem(ctx context.Context, job *Job, item *WorkItem) *WorkResult {
	start := time.Now()
	result := &WorkResult{Item: item}

	if err := ctx.Err(); err != nil {
		result.Error = err
		return result
	}

	switch job.Direction {
	case DirectionDecode:
		doc, err := input.ParseDocument(item.Line.Data, job.Config.Canonical)
		if err != nil {
			result.Error = err
			break
		}
		result.Value, result.Error = bp.converter.Decode(doc)
	case DirectionEncode:
		result.Value, result.Error = bp.converter.Encode(item.Line.Data)
	case DirectionCommand:
		result.Value, result.Error = bp.converter.Command(item.Line.Data)
	}

	result.Duration = time.Since(start)
	return result
}

// LogReporter reports batch progress through a logger
type LogReporter struct {
	logger *logrus.Logger
}

// NewLogReporter creates a reporter writing to logger
func NewLogReporter(logger *logrus.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// ReportItemFailed logs a failed line
func (r *LogReporter) ReportItemFailed(job *Job, result *WorkResult) {
	r.logger.WithFields(logrus.Fields{
		"job":  job.ID,
		"line": result.Item.Line.Number,
	}).WithError(result.Error).Error("conversion failed")
}

// ReportJobComplete logs the job summary
func (r *LogReporter) ReportJobComplete(job *Job) {
	r.logger.WithFields(logrus.Fields{
		"job":        job.ID,
		"kind":       job.Kind,
		"direction":  job.Direction,
		"total":      job.Progress.TotalItems,
		"converted":  job.Progress.SuccessItems,
		"failed":     job.Progress.FailedItems,
		"progress":   fmt.Sprintf("%.0f%%", job.Progress.CalculateProgress()),
		"throughput": fmt.Sprintf("%.1f/s", job.Progress.Throughput),
	}).Info("batch completed")
}

// ReportJobFailed logs a job aborted by failures
func (r *LogReporter) ReportJobFailed(job *Job, err error) {
	r.logger.WithFields(logrus.Fields{
		"job":    job.ID,
		"failed": job.Progress.FailedItems,
	}).WithError(err).Error("batch failed")
}
