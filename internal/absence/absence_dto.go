package absence

type SubmitAbsenceRequest struct {
	EmployeeID            string  `json:"employee_id" binding:"required,uuid"`
	AbsenceType           string  `json:"absence_type" binding:"required"`
	StartDate             string  `json:"start_date" binding:"required"`
	EndDate               string  `json:"end_date" binding:"required"`
	IsHalfDay             bool    `json:"is_half_day"`
	HalfDayPeriod         *string `json:"half_day_period"`
	Reason                string  `json:"reason" binding:"required,max=1000"`
	EmergencyContact      *string `json:"emergency_contact"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	WorkDelegationNotes   *string `json:"work_delegation_notes"`
	DelegatedTo           *string `json:"delegated_to"`
}

// UpdateAbsenceRequest replaces the mutable fields of a pending request.
// Status and audit timestamps are owned by the lifecycle, not the caller.
type UpdateAbsenceRequest struct {
	AbsenceType           string  `json:"absence_type" binding:"required"`
	StartDate             string  `json:"start_date" binding:"required"`
	EndDate               string  `json:"end_date" binding:"required"`
	IsHalfDay             bool    `json:"is_half_day"`
	HalfDayPeriod         *string `json:"half_day_period"`
	Reason                string  `json:"reason" binding:"required,max=1000"`
	EmergencyContact      *string `json:"emergency_contact"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	WorkDelegationNotes   *string `json:"work_delegation_notes"`
	DelegatedTo           *string `json:"delegated_to"`
}

type ResolveAbsenceRequest struct {
	Comments *string `json:"comments"`
}

type AbsenceResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	AbsenceType           string  `json:"absence_type"`
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
	IsHalfDay             bool    `json:"is_half_day"`
	HalfDayPeriod         *string `json:"half_day_period,omitempty"`
	DurationDays          float64 `json:"duration_days"`
	Reason                string  `json:"reason"`
	ManagerComments       *string `json:"manager_comments,omitempty"`
	EmergencyContact      *string `json:"emergency_contact,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	WorkDelegationNotes   *string `json:"work_delegation_notes,omitempty"`
	DelegatedTo           *string `json:"delegated_to,omitempty"`
	Status                string  `json:"status"`
	ApprovedBy            *string `json:"approved_by,omitempty"`
	RequestedAt           string  `json:"requested_at"`
	ApprovedAt            *string `json:"approved_at,omitempty"`
	RejectedAt            *string `json:"rejected_at,omitempty"`
}

type OnLeaveResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	OnLeave    bool   `json:"on_leave"`
}

type PendingCountResponse struct {
	PendingCount int64 `json:"pending_count"`
}
