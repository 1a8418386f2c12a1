package api

import "context"

// SummaryMetric is one headline figure on the dashboard.
type SummaryMetric struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	Change   string `json:"change"`
	Positive bool   `json:"positive"`
}

// PendingTask is an outstanding action item shown on the dashboard.
type PendingTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate,omitempty"`
}

// Announcement is a company-wide notice shown on the dashboard.
type Announcement struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// DashboardSummary is the payload of the dashboard screen.
type DashboardSummary struct {
	Metrics       []SummaryMetric `json:"metrics"`
	Tasks         []PendingTask   `json:"tasks"`
	Announcements []Announcement  `json:"announcements"`
}

func (c *Client) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := c.Get(ctx, "/api/dashboard/summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
