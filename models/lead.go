package models

import "time"

// Lead is a contact captured from the public page footer. At least one of
// Email or Celular must be present.
type Lead struct {
	ID        int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Email     *string   `json:"email,omitempty" db:"email" gorm:"type:text"`
	Celular   *string   `json:"celular,omitempty" db:"celular" gorm:"type:text"`
	Source    string    `json:"source" db:"source" gorm:"type:text;not null;default:'footer'"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null"`
}

// DefaultLeadSource is recorded when the capture form does not say where the
// lead came from.
const DefaultLeadSource = "footer"
