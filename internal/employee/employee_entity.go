package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

const (
	EmploymentFullTime = "FULL_TIME"
	EmploymentPartTime = "PART_TIME"
	EmploymentContract = "CONTRACT"
	EmploymentIntern   = "INTERN"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName      string    `gorm:"type:varchar(100);not null"`
	LastName       string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex:uq_employee_email"`
	Phone          string    `gorm:"type:varchar(50)"`
	Address        string    `gorm:"type:text"`
	EmployeeNumber string    `gorm:"type:varchar(20);uniqueIndex:uq_employee_number"`
	Position       string    `gorm:"type:varchar(100)"`
	Department     string    `gorm:"type:varchar(100);index:idx_employees_department"`

	// Manager by id reference only; the object graph stays flat and callers
	// fetch the manager record on demand.
	ManagerID *uuid.UUID `gorm:"type:uuid;index:idx_employees_manager"`

	HireDate       time.Time `gorm:"type:date"`
	EmploymentType string    `gorm:"type:varchar(20);not null;default:'FULL_TIME'"`
	Bio            string    `gorm:"type:text"`
	Skills         string    `gorm:"type:text"`

	// Soft delete: INACTIVE rows stay for history but leave every listing.
	Status string `gorm:"type:varchar(20);not null;default:'ACTIVE';index:idx_employees_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
