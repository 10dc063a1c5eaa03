package database

import (
	"time"

	"gorm.io/gorm"

	"linkbio-backend/errs"
	"linkbio-backend/models"
)

// LeadRepo persists contacts captured from the public page.
type LeadRepo struct {
	db *gorm.DB
}

func NewLeadRepo(db *gorm.DB) *LeadRepo {
	return &LeadRepo{db}
}

// Add inserts a new lead. The source defaults to "footer" when the capture
// form did not say where the contact came from.
func (r *LeadRepo) Add(lead *models.Lead) error {
	if lead.Source == "" {
		lead.Source = models.DefaultLeadSource
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}
	if err := r.db.Create(lead).Error; err != nil {
		return errs.NewStoreError("create", "lead", err)
	}
	return nil
}
