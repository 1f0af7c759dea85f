package handler

import "time"

type createTaskRequest struct {
	Title       string    `json:"title"       validate:"required,min=3"`
	Description string    `json:"description"`
	AssigneeID  string    `json:"assignee_id"`
	Priority    string    `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     time.Time `json:"due_date"`
}
