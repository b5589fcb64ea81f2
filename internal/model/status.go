package model

// TaskStatus represents the status of a lookup task
type TaskStatus string

const (
	// TaskStatusPending means the task was dispatched but the request has not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusRequesting means the HTTP request is in flight
	TaskStatusRequesting TaskStatus = "Requesting"

	// TaskStatusCompleted means a response (or failure) was received and classified
	TaskStatusCompleted TaskStatus = "Completed"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is waiting on the network
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusRequesting
}

// IsFinished returns true if the task has a result
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted
}
