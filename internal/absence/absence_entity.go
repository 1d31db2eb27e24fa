package absence

import (
	"time"

	"github.com/google/uuid"
)

// Stored statuses. IN_PROGRESS is intentionally absent: it is a reporting
// view over APPROVED (date range contains today), never persisted.
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"

	StatusInProgress = "IN_PROGRESS"
)

const (
	TypeVacation    = "VACATION"
	TypeSickLeave   = "SICK_LEAVE"
	TypePersonal    = "PERSONAL_LEAVE"
	TypeMaternity   = "MATERNITY_LEAVE"
	TypePaternity   = "PATERNITY_LEAVE"
	TypeBereavement = "BEREAVEMENT_LEAVE"
	TypeJuryDuty    = "JURY_DUTY"
	TypeMilitary    = "MILITARY_LEAVE"
	TypeUnpaid      = "UNPAID_LEAVE"
	TypeSabbatical  = "SABBATICAL"
	TypeTraining    = "TRAINING"
	TypeConference  = "CONFERENCE"
	TypeRemoteWork  = "REMOTE_WORK"
	TypeOther       = "OTHER"
)

const (
	HalfDayMorning   = "MORNING"
	HalfDayAfternoon = "AFTERNOON"
)

// BlockingStatuses are the statuses that occupy an employee's calendar for
// overlap purposes. Rejected and cancelled requests never block.
var BlockingStatuses = []string{StatusPending, StatusApproved}

var validTypes = map[string]bool{
	TypeVacation: true, TypeSickLeave: true, TypePersonal: true,
	TypeMaternity: true, TypePaternity: true, TypeBereavement: true,
	TypeJuryDuty: true, TypeMilitary: true, TypeUnpaid: true,
	TypeSabbatical: true, TypeTraining: true, TypeConference: true,
	TypeRemoteWork: true, TypeOther: true,
}

func IsValidType(t string) bool { return validTypes[t] }

// CanTransition is the whole state machine: PENDING is the only non-terminal
// state, so nothing leaves APPROVED, REJECTED or CANCELLED.
func CanTransition(current, target string) bool {
	if current != StatusPending {
		return false
	}
	switch target {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

type AbsenceRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_absence_requests_employee_dates"`

	// Set only when the request leaves PENDING through approve/reject.
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`

	// Employee covering duties during the absence, if any.
	DelegatedTo *uuid.UUID `gorm:"type:uuid"`

	AbsenceType string    `gorm:"type:varchar(30);not null"`
	StartDate   time.Time `gorm:"type:date;not null;index:idx_absence_requests_employee_dates"`
	EndDate     time.Time `gorm:"type:date;not null;index:idx_absence_requests_employee_dates"`

	IsHalfDay     bool    `gorm:"not null;default:false"`
	HalfDayPeriod *string `gorm:"type:varchar(10)"`

	Reason          string  `gorm:"type:text;not null"`
	ManagerComments *string `gorm:"type:text"`

	EmergencyContact      *string `gorm:"type:varchar(255)"`
	EmergencyContactPhone *string `gorm:"type:varchar(50)"`
	WorkDelegationNotes   *string `gorm:"type:text"`

	Status string `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_absence_requests_status"`

	RequestedAt time.Time
	ApprovedAt  *time.Time
	RejectedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectiveStatus derives the reportable status: an approved request whose
// range contains the reference date reads as IN_PROGRESS.
func (r AbsenceRequest) EffectiveStatus(today time.Time) string {
	if r.Status == StatusApproved && !today.Before(r.StartDate) && !today.After(r.EndDate) {
		return StatusInProgress
	}
	return r.Status
}

// DurationDays is the consumed leave in day units: a half-day request is
// always 0.5 regardless of the stored span.
func (r AbsenceRequest) DurationDays() float64 {
	if r.IsHalfDay {
		return 0.5
	}
	return float64(int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1)
}

// Contains reports whether the inclusive [StartDate, EndDate] range covers
// the given day.
func (r AbsenceRequest) Contains(date time.Time) bool {
	return !date.Before(r.StartDate) && !date.After(r.EndDate)
}
