package api

import (
	"context"
	"fmt"
)

// StoreMaster is one store in the master data.
type StoreMaster struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StoreType string `json:"storeType,omitempty"`
	Address   string `json:"address,omitempty"`
}

// StorePayload is the create/update request for a store.
type StorePayload struct {
	Name      string `json:"name"`
	StoreType string `json:"storeType,omitempty"`
	Address   string `json:"address,omitempty"`
}

// GradeMaster is one employee grade in the master data.
type GradeMaster struct {
	ID             int     `json:"id"`
	GradeName      string  `json:"gradeName"`
	CommissionRate float64 `json:"commissionRate"`
}

// GradePayload is the create/update request for a grade. The commission rate
// is expressed as a percentage between 0 and 100.
type GradePayload struct {
	GradeName             string  `json:"gradeName"`
	CommissionRatePercent float64 `json:"commissionRatePercent"`
}

// SalaryTierMaster is one salary plan in the master data.
type SalaryTierMaster struct {
	ID             int    `json:"id"`
	PlanName       string `json:"planName"`
	MonthlyDaysOff int    `json:"monthlyDaysOff"`
	BaseSalary     int    `json:"baseSalary"`
}

// SalaryTierPayload is the create/update request for a salary tier.
type SalaryTierPayload struct {
	PlanName       string `json:"planName"`
	MonthlyDaysOff int    `json:"monthlyDaysOff"`
	BaseSalary     int    `json:"baseSalary"`
}

func (c *Client) Stores(ctx context.Context) ([]StoreMaster, error) {
	var stores []StoreMaster
	if err := c.Get(ctx, "/api/masters/stores", &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (c *Client) CreateStore(ctx context.Context, payload StorePayload) (*StoreMaster, error) {
	var store StoreMaster
	if err := c.Post(ctx, "/api/masters/stores", payload, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

func (c *Client) UpdateStore(ctx context.Context, id int, payload StorePayload) (*StoreMaster, error) {
	var store StoreMaster
	if err := c.Put(ctx, fmt.Sprintf("/api/masters/stores/%d", id), payload, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

func (c *Client) DeleteStore(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/masters/stores/%d", id))
}

func (c *Client) Grades(ctx context.Context) ([]GradeMaster, error) {
	var grades []GradeMaster
	if err := c.Get(ctx, "/api/masters/grades", &grades); err != nil {
		return nil, err
	}
	return grades, nil
}

func (c *Client) CreateGrade(ctx context.Context, payload GradePayload) (*GradeMaster, error) {
	var grade GradeMaster
	if err := c.Post(ctx, "/api/masters/grades", payload, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}

func (c *Client) UpdateGrade(ctx context.Context, id int, payload GradePayload) (*GradeMaster, error) {
	var grade GradeMaster
	if err := c.Put(ctx, fmt.Sprintf("/api/masters/grades/%d", id), payload, &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}

func (c *Client) DeleteGrade(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/masters/grades/%d", id))
}

func (c *Client) SalaryTiers(ctx context.Context) ([]SalaryTierMaster, error) {
	var tiers []SalaryTierMaster
	if err := c.Get(ctx, "/api/masters/salary-tiers", &tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

func (c *Client) CreateSalaryTier(ctx context.Context, payload SalaryTierPayload) (*SalaryTierMaster, error) {
	var tier SalaryTierMaster
	if err := c.Post(ctx, "/api/masters/salary-tiers", payload, &tier); err != nil {
		return nil, err
	}
	return &tier, nil
}

func (c *Client) UpdateSalaryTier(ctx context.Context, id int, payload SalaryTierPayload) (*SalaryTierMaster, error) {
	var tier SalaryTierMaster
	if err := c.Put(ctx, fmt.Sprintf("/api/masters/salary-tiers/%d", id), payload, &tier); err != nil {
		return nil, err
	}
	return &tier, nil
}

func (c *Client) DeleteSalaryTier(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/masters/salary-tiers/%d", id))
}
