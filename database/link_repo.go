package database

import (
	"fmt"

	"gorm.io/gorm"

	"linkbio-backend/errs"
	"linkbio-backend/models"
)

// LinkRepo owns the per-profile ordered link lifecycle. Order indices are
// 1-based and assigned inside the same transaction as the write, so
// concurrent creates for one profile cannot observe a stale maximum.
type LinkRepo struct {
	db *gorm.DB
}

func NewLinkRepo(db *gorm.DB) *LinkRepo {
	return &LinkRepo{db}
}

// FindActiveByProfile returns the profile's visible links in display order.
// A profile with no links (or no row at all) yields an empty slice, not an
// error.
func (r *LinkRepo) FindActiveByProfile(profileID int) ([]models.Link, error) {
	links := []models.Link{}
	err := r.db.
		Where("profile_id = ? AND is_active = ?", profileID, true).
		Order("order_index ASC").
		Find(&links).Error
	if err != nil {
		return nil, errs.NewStoreError("find", "links", err)
	}
	return links, nil
}

// FindAllByProfile returns every link of the profile in display order,
// including inactive ones. Used by the editor.
func (r *LinkRepo) FindAllByProfile(profileID int) ([]models.Link, error) {
	links := []models.Link{}
	err := r.db.
		Where("profile_id = ?", profileID).
		Order("order_index ASC").
		Find(&links).Error
	if err != nil {
		return nil, errs.NewStoreError("find", "links", err)
	}
	return links, nil
}

// Create inserts the link at the end of its profile's list. The next
// order_index is read and the row inserted in one transaction.
func (r *LinkRepo) Create(link *models.Link) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var current struct{ Max int }
		err := tx.Model(&models.Link{}).
			Where("profile_id = ?", link.ProfileID).
			Select("COALESCE(MAX(order_index), 0) AS max").
			Scan(&current).Error
		if err != nil {
			return err
		}

		link.OrderIndex = current.Max + 1
		return tx.Create(link).Error
	})
	if err != nil {
		return errs.NewStoreError("create", "link", err)
	}
	return nil
}

// replaceableColumns are the fields a full-row replace overwrites. The id and
// the owning profile are not mutable through Replace.
var replaceableColumns = []string{
	"type", "image_url", "text_link", "link_url",
	"order_index", "is_active", "background_color", "border_color",
}

// Replace overwrites every mutable field of the link, including order_index.
// Missing fields in the caller's struct become their zero values; this is
// full-replace semantics, not a patch.
func (r *LinkRepo) Replace(link *models.Link) error {
	res := r.db.Model(&models.Link{}).
		Where("id = ?", link.ID).
		Select(replaceableColumns).
		Updates(link)
	if res.Error != nil {
		return errs.NewStoreError("update", "link", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("link")
	}
	return nil
}

// Delete removes the link. Deleting an id that does not exist is not an
// error; the end state is the same.
func (r *LinkRepo) Delete(id int) error {
	if err := r.db.Delete(&models.Link{}, id).Error; err != nil {
		return errs.NewStoreError("delete", "link", err)
	}
	return nil
}

// Reorder assigns order_index = position + 1 to each id in sequence. The
// whole pass runs in one transaction, so a mid-sequence failure leaves the
// previous ordering intact instead of a partially applied one.
func (r *LinkRepo) Reorder(ids []int) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			err := tx.Model(&models.Link{}).
				Where("id = ?", id).
				Update("order_index", position+1).Error
			if err != nil {
				return fmt.Errorf("link %d at position %d: %w", id, position+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return errs.NewStoreError("reorder", "links", err)
	}
	return nil
}
