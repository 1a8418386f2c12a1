package api

import (
	"context"
	"fmt"
)

// EmployeeMaster is one employee row on the staff-management screen.
// Assignment fields are nullable: an employee may have no grade, tier or
// store yet.
type EmployeeMaster struct {
	ID                      int     `json:"id"`
	Name                    string  `json:"name"`
	GradeID                 *int    `json:"gradeId,omitempty"`
	Grade                   *string `json:"grade"`
	EmploymentType          string  `json:"employmentType"`
	SalaryTierID            *int    `json:"salaryTierId,omitempty"`
	SalaryPlan              *string `json:"salaryPlan"`
	StoreID                 *int    `json:"storeId,omitempty"`
	StoreName               *string `json:"storeName"`
	GuaranteedMinimumSalary *int    `json:"guaranteedMinimumSalary,omitempty"`
	ManagerAllowance        *int    `json:"managerAllowance,omitempty"`
}

// EmployeePayload is the create/update request for an employee.
type EmployeePayload struct {
	Name                    string `json:"name"`
	EmploymentType          string `json:"employmentType"`
	GradeID                 *int   `json:"gradeId,omitempty"`
	SalaryTierID            *int   `json:"salaryTierId,omitempty"`
	StoreID                 *int   `json:"storeId,omitempty"`
	GuaranteedMinimumSalary *int   `json:"guaranteedMinimumSalary,omitempty"`
	ManagerAllowance        *int   `json:"managerAllowance,omitempty"`
}

func (c *Client) Employees(ctx context.Context) ([]EmployeeMaster, error) {
	var employees []EmployeeMaster
	if err := c.Get(ctx, "/api/staff", &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) CreateEmployee(ctx context.Context, payload EmployeePayload) (*EmployeeMaster, error) {
	var employee EmployeeMaster
	if err := c.Post(ctx, "/api/staff", payload, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id int, payload EmployeePayload) (*EmployeeMaster, error) {
	var employee EmployeeMaster
	if err := c.Put(ctx, fmt.Sprintf("/api/staff/%d", id), payload, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/staff/%d", id))
}
