package models

import "time"

// Profile represents a registered link-in-bio page owner. The slug is the
// public routing key; the password column holds a bcrypt hash and is never
// serialized.
type Profile struct {
	ID              int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name            string    `json:"name" db:"name" gorm:"type:text;not null;default:''"`
	Description     string    `json:"description" db:"description" gorm:"type:text;not null;default:''"`
	ImageURL        string    `json:"image_url" db:"image_url" gorm:"type:text;not null;default:''"`
	BackgroundColor string    `json:"background_color" db:"background_color" gorm:"type:text;not null;default:'#ffffff'"`
	Slug            string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_profile_slug"`
	Password        string    `json:"-" db:"password" gorm:"type:text;not null;default:''"`
	CreatedAt       time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null"`
}

// DefaultBackgroundColor is applied when a profile is created without an
// explicit page color.
const DefaultBackgroundColor = "#ffffff"
