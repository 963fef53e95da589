package ledger

type CreditBalanceRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=annual sick"`
	Days      int    `json:"days" binding:"required,gt=0"`
}

type BalanceItem struct {
	LeaveType string `json:"leave_type"`
	Days      int    `json:"days"`
}

type BalanceSummaryResponse struct {
	EmployeeID   string        `json:"employee_id"`
	EmployeeName string        `json:"employee_name"`
	Balances     []BalanceItem `json:"balances"`
}
