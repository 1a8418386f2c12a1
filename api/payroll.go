package api

import "context"

// Payroll job states as reported by the backend.
const (
	JobQueued    = "QUEUED"
	JobRunning   = "RUNNING"
	JobCompleted = "COMPLETED"
)

// PayrollJob is one payroll calculation run.
type PayrollJob struct {
	ID          string `json:"id"`
	TargetMonth string `json:"targetMonth"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	StartedAt   string `json:"startedAt"`
}

func (c *Client) PayrollJobs(ctx context.Context) ([]PayrollJob, error) {
	var jobs []PayrollJob
	if err := c.Get(ctx, "/api/payroll/jobs", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ExecutePayroll starts a payroll run for the given month (format "2006-01").
func (c *Client) ExecutePayroll(ctx context.Context, targetMonth string) (*PayrollJob, error) {
	var job PayrollJob
	body := map[string]string{"targetMonth": targetMonth}
	if err := c.Post(ctx, "/api/payroll/execute", body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
