package feedback

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "ACTIVE"
	StatusArchived = "ARCHIVED"
)

const (
	TypePraise       = "PRAISE"
	TypeConstructive = "CONSTRUCTIVE"
	TypeGeneral      = "GENERAL"
)

var validTypes = map[string]bool{
	TypePraise: true, TypeConstructive: true, TypeGeneral: true,
}

func IsValidType(t string) bool { return validTypes[t] }

type Feedback struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_feedback_employee"`
	GiverID    uuid.UUID `gorm:"type:uuid;not null;index:idx_feedback_giver"`

	Title   string `gorm:"type:varchar(200);not null"`
	Content string `gorm:"type:text;not null"`

	// Rewritten copy produced by the enhancement service; the original
	// content is always preserved.
	EnhancedContent *string `gorm:"type:text"`

	FeedbackType string  `gorm:"type:varchar(20);not null"`
	Rating       *int    `gorm:"type:smallint"`
	Category     *string `gorm:"type:varchar(100)"`
	Tags         *string `gorm:"type:varchar(500)"`

	IsPublic    bool `gorm:"not null;default:false"`
	IsAnonymous bool `gorm:"not null;default:false"`

	Status string `gorm:"type:varchar(20);not null;default:'ACTIVE';index:idx_feedback_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayContent prefers the enhanced text when one exists.
func (f Feedback) DisplayContent() string {
	if f.EnhancedContent != nil && *f.EnhancedContent != "" {
		return *f.EnhancedContent
	}
	return f.Content
}
