package model

import (
	"time"
)

// LookupTask represents a single dispatched lookup
type LookupTask struct {
	ID         string
	Zip        string
	Status     TaskStatus
	StartedAt  time.Time // when the task was dispatched
	FinishedAt time.Time // when the result was classified
	Result     LookupResult
}

// NewLookupTask creates a pending task for zip
func NewLookupTask(id, zip string) *LookupTask {
	return &LookupTask{
		ID:        id,
		Zip:       zip,
		Status:    TaskStatusPending,
		StartedAt: time.Now(),
	}
}

// Complete stores the result and marks the task finished
func (lt *LookupTask) Complete(result LookupResult) {
	lt.Result = result
	lt.Status = TaskStatusCompleted
	lt.FinishedAt = time.Now()
}

// Duration returns how long the lookup took, or zero while still active
func (lt *LookupTask) Duration() time.Duration {
	if lt.FinishedAt.IsZero() {
		return 0
	}
	return lt.FinishedAt.Sub(lt.StartedAt)
}
