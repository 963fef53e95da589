// Package seed loads a small demo dataset through the real services so
// every validation and balance rule applies to the sample records too.
package seed

import (
	"context"

	"leavedesk/internal/employee"
	"leavedesk/internal/leave"

	"go.uber.org/zap"
)

type Result struct {
	EmployeesCreated int
	RequestsCreated  int
}

func Run(ctx context.Context, employees employee.Service, leaves leave.Service, logger *zap.Logger) (Result, error) {
	log := logger.Named("seed")

	demoEmployees := []employee.CreateEmployeeRequest{
		{
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john.doe@company.com",
			Department: "Engineering",
			Position:   "Senior Developer",
			HireDate:   "2020-01-15",
		},
		{
			FirstName:  "Jane",
			LastName:   "Smith",
			Email:      "jane.smith@company.com",
			Department: "Marketing",
			Position:   "Marketing Manager",
			HireDate:   "2019-03-20",
		},
		{
			FirstName:  "Mike",
			LastName:   "Johnson",
			Email:      "mike.johnson@company.com",
			Department: "Engineering",
			Position:   "Team Lead",
			HireDate:   "2018-06-10",
		},
	}

	var result Result
	created := make([]employee.EmployeeResponse, 0, len(demoEmployees))

	for _, req := range demoEmployees {
		resp, err := employees.Create(ctx, req)
		if err != nil {
			log.Warn("seed employee skipped", zap.String("email", req.Email), zap.Error(err))
			continue
		}
		created = append(created, resp)
		result.EmployeesCreated++
	}

	if len(created) < 3 {
		return result, nil
	}

	// Put the two developers under the team lead.
	lead := created[2]
	for _, dev := range created[:2] {
		if _, err := employees.Update(ctx, dev.ID, employee.UpdateEmployeeRequest{
			ManagerID: &lead.ID,
		}); err != nil {
			log.Warn("seed manager link skipped", zap.String("employee_id", dev.ID), zap.Error(err))
		}
	}

	demoRequests := []leave.SubmitLeaveRequest{
		{
			EmployeeID: created[0].ID,
			LeaveType:  "annual",
			StartDate:  "2025-07-01",
			EndDate:    "2025-07-05",
			Reason:     "Summer vacation",
		},
		{
			EmployeeID: created[1].ID,
			LeaveType:  "sick",
			StartDate:  "2025-06-25",
			EndDate:    "2025-06-26",
			Reason:     "Doctor appointment",
		},
	}

	for _, req := range demoRequests {
		if _, err := leaves.Submit(ctx, req); err != nil {
			log.Warn("seed leave request skipped", zap.String("employee_id", req.EmployeeID), zap.Error(err))
			continue
		}
		result.RequestsCreated++
	}

	log.Info("demo data loaded",
		zap.Int("employees_created", result.EmployeesCreated),
		zap.Int("requests_created", result.RequestsCreated),
	)

	return result, nil
}
