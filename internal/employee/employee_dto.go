package employee

type CreateEmployeeRequest struct {
	FirstName      string  `json:"first_name" binding:"required,max=100"`
	LastName       string  `json:"last_name" binding:"required,max=100"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	EmployeeNumber string  `json:"employee_number"`
	Position       string  `json:"position"`
	Department     string  `json:"department"`
	ManagerID      *string `json:"manager_id"`
	HireDate       string  `json:"hire_date" binding:"required"`
	EmploymentType string  `json:"employment_type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERN"`
	Bio            string  `json:"bio"`
	Skills         string  `json:"skills"`
}

type UpdateEmployeeRequest struct {
	FirstName      string  `json:"first_name" binding:"required,max=100"`
	LastName       string  `json:"last_name" binding:"required,max=100"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	EmployeeNumber string  `json:"employee_number"`
	Position       string  `json:"position"`
	Department     string  `json:"department"`
	ManagerID      *string `json:"manager_id"`
	HireDate       string  `json:"hire_date" binding:"required"`
	EmploymentType string  `json:"employment_type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERN"`
	Bio            string  `json:"bio"`
	Skills         string  `json:"skills"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone,omitempty"`
	Address        string  `json:"address,omitempty"`
	EmployeeNumber string  `json:"employee_number"`
	Position       string  `json:"position,omitempty"`
	Department     string  `json:"department,omitempty"`
	ManagerID      *string `json:"manager_id,omitempty"`
	HireDate       string  `json:"hire_date"`
	EmploymentType string  `json:"employment_type"`
	Bio            string  `json:"bio,omitempty"`
	Skills         string  `json:"skills,omitempty"`
	Status         string  `json:"status"`
}

// EmployeeOption is the slim shape pickers consume; cached aggressively.
type EmployeeOption struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position,omitempty"`
}
