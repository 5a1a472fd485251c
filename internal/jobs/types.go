package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeCallSummarize  = "call:summarize"
	TypeStaleCallSweep = "call:sweep_stale"
)

// Queue names
const (
	QueueDefault = "default"
	QueueLow     = "low"
)

// SummarizeJobPayload names the finished call to summarise.
type SummarizeJobPayload struct {
	CallID string `json:"call_id"`
}

// NewSummarizeTask creates a summary task. The task id is derived from the
// call so a call is never summarised twice concurrently.
func NewSummarizeTask(payload SummarizeJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(
		TypeCallSummarize,
		data,
		asynq.Queue(QueueDefault),
		asynq.TaskID("summarize:"+payload.CallID),
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
		asynq.Retention(24*time.Hour),
	), nil
}

// NewStaleCallSweepTask creates the periodic sweep that closes calls left
// active by a crashed process.
func NewStaleCallSweepTask() *asynq.Task {
	return asynq.NewTask(
		TypeStaleCallSweep,
		nil,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(time.Minute),
	)
}
