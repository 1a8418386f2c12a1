package api

import "context"

// CompanySummary is one tenant company as seen by the platform super-admin.
type CompanySummary struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// AdminUserPayload is the request to provision a company administrator.
type AdminUserPayload struct {
	CompanyID   int    `json:"companyId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

// AdminUser is a provisioned company administrator.
type AdminUser struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CompanyID   int    `json:"companyId"`
	CompanyName string `json:"companyName"`
}

func (c *Client) Companies(ctx context.Context) ([]CompanySummary, error) {
	var companies []CompanySummary
	if err := c.Get(ctx, "/api/super/companies", &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (c *Client) CreateCompanyAdmin(ctx context.Context, payload AdminUserPayload) (*AdminUser, error) {
	var user AdminUser
	if err := c.Post(ctx, "/api/super/users", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
