package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "Todo"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusDone       TaskStatus = "Done"
)

// ParseTaskStatus matches s case-insensitively. Unknown values are rejected.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	for _, status := range []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone} {
		if strings.EqualFold(strings.TrimSpace(s), string(status)) {
			return status, true
		}
	}

	return "", false
}

type TaskPriority string

const (
	TaskPriorityLow  TaskPriority = "Low"
	TaskPriorityMid  TaskPriority = "Mid"
	TaskPriorityHigh TaskPriority = "High"
)

// ParseTaskPriority matches s case-insensitively. Unknown values are rejected.
func ParseTaskPriority(s string) (TaskPriority, bool) {
	for _, priority := range []TaskPriority{TaskPriorityLow, TaskPriorityMid, TaskPriorityHigh} {
		if strings.EqualFold(strings.TrimSpace(s), string(priority)) {
			return priority, true
		}
	}

	return "", false
}

// Task is a unit of work owned by a single user and counted against the
// user's plan quota.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
