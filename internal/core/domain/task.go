package domain

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskPriority enumerates task urgency levels.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task is a clinic work item, optionally assigned to a staff member.
type Task struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	AssigneeID  string       `json:"assignee_id,omitempty" bson:"assignee_id,omitempty"`
	Priority    TaskPriority `json:"priority" bson:"priority"`
	DueDate     time.Time    `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Done        bool         `json:"done" bson:"done"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" bson:"updated_at"`
}
