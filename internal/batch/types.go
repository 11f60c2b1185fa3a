// internal/batch/types.go - Batch processing types
package batch

import (
	"time"

	"github.com/valpere/geo_bson/internal"
	"github.com/valpere/geo_bson/internal/input"
)

// Direction selects what a batch job does with each line
type Direction string

const (
	// DirectionDecode reads Extended JSON documents and produces values
	DirectionDecode Direction = "decode"
	// DirectionEncode reads JSON values and produces documents
	DirectionEncode Direction = "encode"
	// DirectionCommand reads JSON shapes and produces query operator documents
	DirectionCommand Direction = "command"
)

// Job represents a batch conversion job
type Job struct {
	ID          string             `json:"id"`
	Kind        internal.ValueKind `json:"kind"`
	Direction   Direction          `json:"direction"`
	Config      *JobConfig         `json:"config"`
	Status      JobStatus          `json:"status"`
	Progress    *JobProgress       `json:"progress"`
	CreatedAt   time.Time          `json:"created_at"`
	StartedAt   *time.Time         `json:"started_at,omitempty"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	Error       error              `json:"error,omitempty"`
}

// JobConfig contains configuration for a batch conversion job
type JobConfig struct {
	Concurrency int  `json:"concurrency"`
	FailOnError bool `json:"fail_on_error"`
	Canonical   bool `json:"canonical"`
}

// JobStatus represents the current status of a batch job
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCanceled  JobStatus = "canceled"
)

// JobProgress tracks the progress of a batch job
type JobProgress struct {
	TotalItems   int64     `json:"total_items"`
	SuccessItems int64     `json:"success_items"`
	FailedItems  int64     `json:"failed_items"`
	StartTime    time.Time `json:"start_time"`
	Throughput   float64   `json:"throughput"`
}

// WorkItem represents a single input line of a batch job
type WorkItem struct {
	Line input.Line `json:"line"`
}

// WorkResult represents the result of converting a work item
type WorkResult struct {
	Item     *WorkItem     `json:"item"`
	Value    interface{}   `json:"value,omitempty"`
	Error    error         `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// ProgressReporter defines the interface for reporting job progress
type ProgressReporter interface {
	ReportItemFailed(job *Job, result *WorkResult)
	ReportJobComplete(job *Job)
	ReportJobFailed(job *Job, err error)
}

// NewJob creates a new batch conversion job
func NewJob(id string, kind internal.ValueKind, direction Direction, config *JobConfig) *Job {
	return &Job{
		ID:        id,
		Kind:      kind,
		Direction: direction,
		Config:    config,
		Status:    JobStatusPending,
		Progress:  NewJobProgress(),
		CreatedAt: time.Now(),
	}
}

// NewJobConfig creates a new job configuration with default values
func NewJobConfig() *JobConfig {
	return &JobConfig{
		Concurrency: 8,
		FailOnError: false,
	}
}

// NewJobProgress creates a new job progress tracker
func NewJobProgress() *JobProgress {
	return &JobProgress{StartTime: time.Now()}
}

// NewWorkItems wraps input lines into work items
func NewWorkItems(lines []input.Line) []*WorkItem {
	items := make([]*WorkItem, len(lines))
	for i := range lines {
		items[i] = &WorkItem{Line: lines[i]}
	}
	return items
}

// IsComplete returns true if the job has finished (successfully or with error)
func (j *Job) IsComplete() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed || j.Status == JobStatusCanceled
}

// CalculateProgress calculates the completion percentage
func (p *JobProgress) CalculateProgress() float64 {
	if p.TotalItems == 0 {
		return 0
	}
	return float64(p.SuccessItems+p.FailedItems) / float64(p.TotalItems) * 100
}

// UpdateThroughput updates the processing throughput based on elapsed time
func (p *JobProgress) UpdateThroughput() {
	elapsed := time.Since(p.StartTime)
	processed := p.SuccessItems + p.FailedItems
	if elapsed.Seconds() > 0 && processed > 0 {
		p.Throughput = float64(processed) / elapsed.Seconds()
	}
}

// Stats converts the progress into processing stats
func (p *JobProgress) Stats(end time.Time) internal.ProcessingStats {
	return internal.ProcessingStats{
		Total:      p.TotalItems,
		Converted:  p.SuccessItems,
		Failed:     p.FailedItems,
		StartTime:  p.StartTime,
		EndTime:    end,
		Throughput: p.Throughput,
	}
}

// String returns a string representation of the job status
func (s JobStatus) String() string {
	return string(s)
}

// IsValid checks if the direction is supported
func (d Direction) IsValid() bool {
	switch d {
	case DirectionDecode, DirectionEncode, DirectionCommand:
		return true
	default:
		return false
	}
}
