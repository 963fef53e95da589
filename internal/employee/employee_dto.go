package employee

type CreateEmployeeRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Department string  `json:"department" binding:"required"`
	Position   string  `json:"position" binding:"required"`
	HireDate   string  `json:"hire_date" binding:"required"`
	ManagerID  *string `json:"manager_id" binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest is a partial update: nil fields are left
// untouched. An empty manager_id clears the manager link.
type UpdateEmployeeRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Status     *string `json:"status" binding:"omitempty,oneof=active inactive terminated"`
	ManagerID  *string `json:"manager_id"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	EmployeeNumber string  `json:"employee_number"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	HireDate       string  `json:"hire_date"`
	Status         string  `json:"status"`
	ManagerID      *string `json:"manager_id,omitempty"`
	ManagerName    *string `json:"manager_name,omitempty"`
}
