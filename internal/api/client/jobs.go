package client

import (
	"context"

	domain "github.com/tdevries/vintedwatch/pkg/types"
)

// ListJobs returns the most recent run for each distinct scheduler job.
func (c *Client) ListJobs(ctx context.Context) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetJobHistory returns the run history for one job, newest first.
func (c *Client) GetJobHistory(ctx context.Context, jobName string) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	if err := c.get(ctx, "/api/v1/jobs/"+jobName, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// TriggerSweep runs a sweep over all active watches and returns its
// stats.
func (c *Client) TriggerSweep(ctx context.Context) (*domain.SweepStats, error) {
	var stats domain.SweepStats
	if err := c.post(ctx, "/api/v1/sweep", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetSystemState returns aggregate system counts.
func (c *Client) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	var state domain.SystemState
	if err := c.get(ctx, "/api/v1/system/state", &state); err != nil {
		return nil, err
	}
	return &state, nil
}
