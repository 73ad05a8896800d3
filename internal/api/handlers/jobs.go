package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "github.com/tdevries/vintedwatch/pkg/types"
)

const defaultJobHistoryLimit = 20

// JobsProvider defines the store methods required by the jobs handler.
type JobsProvider interface {
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler exposes scheduler job run history.
type JobsHandler struct {
	store JobsProvider
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s JobsProvider) *JobsHandler {
	return &JobsHandler{store: s}
}

// List handles GET /api/v1/jobs and returns the most recent run per
// distinct job.
func (h *JobsHandler) List(c echo.Context) error {
	runs, err := h.store.ListLatestJobRuns(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing jobs: " + err.Error(),
		})
	}

	if runs == nil {
		runs = []domain.JobRun{}
	}

	return c.JSON(http.StatusOK, runs)
}

// History handles GET /api/v1/jobs/:job_name and returns run history
// newest first.
func (h *JobsHandler) History(c echo.Context) error {
	jobName := c.Param("job_name")

	runs, err := h.store.ListJobRuns(c.Request().Context(), jobName, defaultJobHistoryLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "fetching job history: " + err.Error(),
		})
	}

	if runs == nil {
		runs = []domain.JobRun{}
	}

	return c.JSON(http.StatusOK, runs)
}
