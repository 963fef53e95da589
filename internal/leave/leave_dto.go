package leave

type SubmitLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	LeaveType  string `json:"leave_type" binding:"required,oneof=annual sick maternity paternity emergency unpaid"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

type DecideLeaveRequest struct {
	ApproverID string `json:"approver_id" binding:"required,uuid"`
	Comments   string `json:"comments"`
}

type CancelLeaveRequest struct {
	RequesterID string `json:"requester_id" binding:"required,uuid"`
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalDays    int     `json:"total_days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	RequestedAt  string  `json:"requested_at"`
	ApproverID   *string `json:"approver_id,omitempty"`
	ApproverName *string `json:"approver_name,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	Comments     *string `json:"comments,omitempty"`
}
