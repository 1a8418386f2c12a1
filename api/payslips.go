package api

import (
	"context"
	"net/url"
)

// Payslip is one employee's pay statement for a month.
type Payslip struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employeeName"`
	Role         string `json:"role"`
	BaseSalary   int    `json:"baseSalary"`
	Allowances   int    `json:"allowances"`
	Deductions   int    `json:"deductions"`
	NetPay       int    `json:"netPay"`
	Status       string `json:"status"`
}

func (c *Client) Payslips(ctx context.Context, targetMonth string) ([]Payslip, error) {
	var payslips []Payslip
	path := "/api/payslips?targetMonth=" + url.QueryEscape(targetMonth)
	if err := c.Get(ctx, path, &payslips); err != nil {
		return nil, err
	}
	return payslips, nil
}
