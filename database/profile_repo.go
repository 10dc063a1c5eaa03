package database

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"linkbio-backend/errs"
	"linkbio-backend/models"
)

// ProfileRepo owns the profile lifecycle: resolution by slug or id,
// credential checks, registration and partial updates. Slugs are stored in
// normalized form only.
type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// ProfilePatch carries the fields of a partial profile update. Nil pointers
// mean "leave unchanged"; only fields present in the request are applied.
type ProfilePatch struct {
	ID              int
	Name            *string
	Description     *string
	ImageURL        *string
	BackgroundColor *string
	Slug            *string
	Password        *string
}

// FindBySlug resolves a profile by its normalized slug.
func (r *ProfileRepo) FindBySlug(slug string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("slug = ?", models.NormalizeSlug(slug)).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("profile")
	}
	if err != nil {
		return nil, errs.NewStoreError("find", "profile", err)
	}
	return &profile, nil
}

// FindByID resolves a profile by its surrogate key.
func (r *ProfileRepo) FindByID(id int) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("profile")
	}
	if err != nil {
		return nil, errs.NewStoreError("find", "profile", err)
	}
	return &profile, nil
}

// Authenticate resolves the slug and checks the password against the stored
// bcrypt hash. An unknown slug and a wrong password are indistinguishable to
// the caller.
func (r *ProfileRepo) Authenticate(slug, password string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("slug = ?", models.NormalizeSlug(slug)).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewUnauthorizedError("incorrect slug or password")
	}
	if err != nil {
		return nil, errs.NewStoreError("find", "profile", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)) != nil {
		return nil, errs.NewUnauthorizedError("incorrect slug or password")
	}

	return &profile, nil
}

// Register creates a new profile. The slug is normalized before the
// uniqueness check, so two inputs that normalize identically collide.
func (r *ProfileRepo) Register(name, slug, password, description string) (*models.Profile, error) {
	normalized := models.NormalizeSlug(slug)
	if len(normalized) < models.MinSlugLength {
		return nil, errs.NewInvalidFieldError("slug", "must contain at least 3 characters from [a-z0-9_]")
	}

	var count int64
	if err := r.db.Model(&models.Profile{}).Where("slug = ?", normalized).Count(&count).Error; err != nil {
		return nil, errs.NewStoreError("count", "profiles", err)
	}
	if count > 0 {
		return nil, errs.NewSlugTaken(normalized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewInternalError("failed to hash password")
	}

	profile := &models.Profile{
		Name:            name,
		Slug:            normalized,
		Password:        string(hash),
		Description:     description,
		BackgroundColor: models.DefaultBackgroundColor,
		CreatedAt:       time.Now().UTC(),
	}
	if err := r.db.Create(profile).Error; err != nil {
		return nil, errs.NewStoreError("create", "profile", err)
	}
	return profile, nil
}

// Upsert applies a partial update to the profile identified by patch.ID,
// inserting a fresh row with defaults when none exists. A slug supplied in
// the patch is normalized and checked against every other profile before the
// row is written.
func (r *ProfileRepo) Upsert(patch ProfilePatch) (*models.Profile, error) {
	id := patch.ID
	if id == 0 {
		// the original single-profile deployments address the editor
		// profile as id 1
		id = 1
	}

	inserting := false
	var profile models.Profile
	err := r.db.First(&profile, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		inserting = true
		profile = models.Profile{
			ID:              id,
			BackgroundColor: models.DefaultBackgroundColor,
			CreatedAt:       time.Now().UTC(),
		}
	case err != nil:
		return nil, errs.NewStoreError("find", "profile", err)
	}

	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.Description != nil {
		profile.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		profile.ImageURL = *patch.ImageURL
	}
	if patch.BackgroundColor != nil {
		profile.BackgroundColor = *patch.BackgroundColor
	}
	if patch.Slug != nil {
		normalized := models.NormalizeSlug(*patch.Slug)
		if len(normalized) < models.MinSlugLength {
			return nil, errs.NewInvalidFieldError("slug", "must contain at least 3 characters from [a-z0-9_]")
		}

		var count int64
		if err := r.db.Model(&models.Profile{}).Where("slug = ? AND id <> ?", normalized, id).Count(&count).Error; err != nil {
			return nil, errs.NewStoreError("count", "profiles", err)
		}
		if count > 0 {
			return nil, errs.NewSlugTaken(normalized)
		}
		profile.Slug = normalized
	}
	if patch.Password != nil && *patch.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errs.NewInternalError("failed to hash password")
		}
		profile.Password = string(hash)
	}

	// Save only updates when the primary key is preset, so a fresh row
	// needs an explicit insert.
	if inserting {
		if err := r.db.Create(&profile).Error; err != nil {
			return nil, errs.NewStoreError("create", "profile", err)
		}
		return &profile, nil
	}
	if err := r.db.Save(&profile).Error; err != nil {
		return nil, errs.NewStoreError("save", "profile", err)
	}
	return &profile, nil
}
