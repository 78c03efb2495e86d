// Package content is the typed data-access layer over the portfolio tables.
// It performs no input validation; callers are expected to have bound and
// range-checked request bodies before reaching it.
package content

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portfolio/internal/database"
)

// Repository wraps the shared GORM handle with per-entity CRUD functions.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a Repository over an initialized store.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAbout returns the latest about row. found is false when no row exists.
func (r *Repository) GetAbout(ctx context.Context) (database.About, bool, error) {
	var about database.About
	err := r.db.WithContext(ctx).Order("id DESC").First(&about).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.About{}, false, nil
	}
	if err != nil {
		return database.About{}, false, err
	}
	return about, true, nil
}

// UpsertAbout updates the latest existing about row or inserts the first one.
// Repeated calls never grow the table past one logical row.
func (r *Repository) UpsertAbout(ctx context.Context, fields database.About) error {
	var existing database.About
	err := r.db.WithContext(ctx).Order("id DESC").First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		fields.ID = 0
		return r.db.WithContext(ctx).Create(&fields).Error
	case err != nil:
		return err
	default:
		return r.db.WithContext(ctx).Model(&existing).Updates(map[string]any{
			"title":       fields.Title,
			"subtitle":    fields.Subtitle,
			"description": fields.Description,
			"image_url":   fields.ImageURL,
		}).Error
	}
}

// ListWork returns all work entries ordered by display_order ascending with
// newer rows first inside the same order value.
func (r *Repository) ListWork(ctx context.Context) ([]database.WorkExperience, error) {
	items := make([]database.WorkExperience, 0)
	err := r.db.WithContext(ctx).Order("display_order ASC, id DESC").Find(&items).Error
	return items, err
}

// GetWork fetches a single work entry by id.
func (r *Repository) GetWork(ctx context.Context, id uint) (database.WorkExperience, bool, error) {
	var item database.WorkExperience
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.WorkExperience{}, false, nil
	}
	if err != nil {
		return database.WorkExperience{}, false, err
	}
	return item, true, nil
}

// CreateWork inserts a work entry and returns its assigned id.
func (r *Repository) CreateWork(ctx context.Context, item database.WorkExperience) (uint, error) {
	item.ID = 0
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return 0, err
	}
	return item.ID, nil
}

// UpdateWork overwrites the mutable columns of a work entry and reports how
// many rows matched. Zero means the id did not exist; that is not an error.
func (r *Repository) UpdateWork(ctx context.Context, id uint, item database.WorkExperience) (int64, error) {
	res := r.db.WithContext(ctx).Model(&database.WorkExperience{}).Where("id = ?", id).Updates(map[string]any{
		"title":         item.Title,
		"company":       item.Company,
		"period":        item.Period,
		"description":   item.Description,
		"skills":        item.Skills,
		"image_url":     item.ImageURL,
		"display_order": item.DisplayOrder,
	})
	return res.RowsAffected, res.Error
}

// DeleteWork removes a work entry, reporting rows affected.
func (r *Repository) DeleteWork(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&database.WorkExperience{}, id)
	return res.RowsAffected, res.Error
}

// ListPublications returns all publications ordered by display_order
// ascending, newest year first inside the same order value.
func (r *Repository) ListPublications(ctx context.Context) ([]database.Publication, error) {
	items := make([]database.Publication, 0)
	err := r.db.WithContext(ctx).Order("display_order ASC, year DESC").Find(&items).Error
	return items, err
}

// GetPublication fetches a single publication by id.
func (r *Repository) GetPublication(ctx context.Context, id uint) (database.Publication, bool, error) {
	var item database.Publication
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Publication{}, false, nil
	}
	if err != nil {
		return database.Publication{}, false, err
	}
	return item, true, nil
}

// CreatePublication inserts a publication and returns its assigned id.
func (r *Repository) CreatePublication(ctx context.Context, item database.Publication) (uint, error) {
	item.ID = 0
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return 0, err
	}
	return item.ID, nil
}

// UpdatePublication overwrites the mutable columns of a publication.
func (r *Repository) UpdatePublication(ctx context.Context, id uint, item database.Publication) (int64, error) {
	res := r.db.WithContext(ctx).Model(&database.Publication{}).Where("id = ?", id).Updates(map[string]any{
		"title":         item.Title,
		"publisher":     item.Publisher,
		"year":          item.Year,
		"description":   item.Description,
		"url":           item.URL,
		"image_url":     item.ImageURL,
		"display_order": item.DisplayOrder,
	})
	return res.RowsAffected, res.Error
}

// DeletePublication removes a publication, reporting rows affected.
func (r *Repository) DeletePublication(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&database.Publication{}, id)
	return res.RowsAffected, res.Error
}

// GetContact returns the latest contact row. found is false when no row exists.
func (r *Repository) GetContact(ctx context.Context) (database.Contact, bool, error) {
	var contact database.Contact
	err := r.db.WithContext(ctx).Order("id DESC").First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Contact{}, false, nil
	}
	if err != nil {
		return database.Contact{}, false, err
	}
	return contact, true, nil
}

// UpsertContact updates the latest existing contact row or inserts the first one.
func (r *Repository) UpsertContact(ctx context.Context, fields database.Contact) error {
	var existing database.Contact
	err := r.db.WithContext(ctx).Order("id DESC").First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		fields.ID = 0
		return r.db.WithContext(ctx).Create(&fields).Error
	case err != nil:
		return err
	default:
		return r.db.WithContext(ctx).Model(&existing).Updates(map[string]any{
			"email":     fields.Email,
			"github":    fields.GitHub,
			"linkedin":  fields.LinkedIn,
			"instagram": fields.Instagram,
		}).Error
	}
}

// GetUserByUsername looks up the admin account for login.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (database.User, bool, error) {
	var user database.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.User{}, false, nil
	}
	if err != nil {
		return database.User{}, false, err
	}
	return user, true, nil
}

// CreateUser inserts a credential row. Provisioning only.
func (r *Repository) CreateUser(ctx context.Context, username, passwordHash string) (uint, error) {
	user := database.User{Username: username, PasswordHash: passwordHash}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}
