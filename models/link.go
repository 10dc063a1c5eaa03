package models

// Link types. Text links carry a display caption in TextLink; image links
// render the image at ImageURL.
const (
	LinkTypeImage = "image"
	LinkTypeText  = "text"
)

// Link represents a single clickable entry on a profile page. OrderIndex is
// 1-based and defines display order within the owning profile.
type Link struct {
	ID              int     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	ProfileID       int     `json:"profile_id" db:"profile_id" gorm:"not null;index:idx_link_profile_id"`
	Type            string  `json:"type" db:"type" gorm:"type:text;not null"`
	ImageURL        *string `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	TextLink        *string `json:"text_link,omitempty" db:"text_link" gorm:"type:text"`
	LinkURL         string  `json:"link_url" db:"link_url" gorm:"type:text;not null"`
	OrderIndex      int     `json:"order_index" db:"order_index" gorm:"not null;index:idx_link_profile_order"`
	IsActive        bool    `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	BackgroundColor *string `json:"background_color,omitempty" db:"background_color" gorm:"type:text"`
	BorderColor     *string `json:"border_color,omitempty" db:"border_color" gorm:"type:text"`
}
