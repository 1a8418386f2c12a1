package api

import "context"

// DailyAttendance is one staff attendance row for the daily-metrics screen.
type DailyAttendance struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	StaffName    string  `json:"staffName"`
	StoreName    string  `json:"storeName"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     string  `json:"checkOut"`
	WorkHours    float64 `json:"workHours"`
	TardyMinutes int     `json:"tardyMinutes"`
	Status       string  `json:"status"`
}

// StoreMetric is one store's daily sales summary.
type StoreMetric struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	StoreName  string  `json:"storeName"`
	Sales      int     `json:"sales"`
	Discount   int     `json:"discount"`
	TotalHours float64 `json:"totalHours"`
}

// PersonalMetric is one staff member's daily sales summary.
type PersonalMetric struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	StaffName    string `json:"staffName"`
	Sales        int    `json:"sales"`
	ProductSales int    `json:"productSales"`
}

// DailyReport is the payload of the daily-metrics screen.
type DailyReport struct {
	Attendances     []DailyAttendance `json:"attendances"`
	StoreMetrics    []StoreMetric     `json:"storeMetrics"`
	PersonalMetrics []PersonalMetric  `json:"personalMetrics"`
}

func (c *Client) Daily(ctx context.Context) (*DailyReport, error) {
	var report DailyReport
	if err := c.Get(ctx, "/api/daily", &report); err != nil {
		return nil, err
	}
	return &report, nil
}
