package model

import "github.com/google/uuid"

// Task is a long-running server job, such as a network export.
type Task struct {
	ExternalObject
	Description     string         `json:"description,omitempty"`
	Priority        Priority       `json:"priority,omitempty"`
	Progress        int            `json:"progress,omitempty"`
	Resource        string         `json:"resource,omitempty"`
	Status          TaskStatus     `json:"status,omitempty"`
	TaskType        TaskType       `json:"taskType,omitempty"`
	Format          FileFormat     `json:"format,omitempty"`
	TaskOwnerID     uuid.UUID      `json:"taskOwnerId,omitempty"`
	StartTime       int64          `json:"startTime,omitempty"`
	FinishTime      int64          `json:"finishTime,omitempty"`
	Message         string         `json:"message,omitempty"`
	Attributes      map[string]any `json:"attributes,omitempty"`
	OwnerProperties map[string]any `json:"ownerProperties,omitempty"`
}
