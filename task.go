package ndex

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kbukum/ndex-go/httpclient"
	"github.com/kbukum/ndex-go/model"
)

// TaskService lists the authenticated user's tasks and downloads exports.
type TaskService struct{ service }

// List returns tasks in the given status. An empty status lists all tasks.
func (s *TaskService) List(ctx context.Context, status model.TaskStatus, page Page) ([]model.Task, error) {
	if status == "" {
		status = model.TaskStatusAll
	}
	req := httpclient.NewRequest(http.MethodGet, "/task").AddQuery("status", status)
	return decode[[]model.Task](ctx, s.service, page.startSize(req))
}

// Get returns one task.
func (s *TaskService) Get(ctx context.Context, taskID uuid.UUID) (*model.Task, error) {
	return decode[*model.Task](ctx, s.service, httpclient.NewRequest(http.MethodGet, path("task", taskID.String())))
}

// Delete deletes a task and its output file.
func (s *TaskService) Delete(ctx context.Context, taskID uuid.UUID) error {
	return s.discard(ctx, httpclient.NewRequest(http.MethodDelete, path("task", taskID.String())))
}

// DownloadFile returns the file produced by an export task, in the format
// the export was requested in.
func (s *TaskService) DownloadFile(ctx context.Context, taskID uuid.UUID) ([]byte, error) {
	return s.raw(ctx, httpclient.NewRequest(http.MethodGet, path("task", taskID.String(), "file")))
}
