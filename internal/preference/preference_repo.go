package preference

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=preference_repo.go -destination=mock/preference_repo_mock.go -package=mock
type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*Preference, error)
	Upsert(ctx context.Context, pref *Preference) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByUserID returns nil without error when the user never saved preferences.
func (r *repository) FindByUserID(ctx context.Context, userID string) (*Preference, error) {
	var pref Preference
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *repository) Upsert(ctx context.Context, pref *Preference) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"sidebar_collapsed", "updated_at"}),
		}).
		Create(pref).Error
}
