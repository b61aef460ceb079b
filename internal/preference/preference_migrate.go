package preference

import (
	"context"

	"gorm.io/gorm"
)

// Migrate creates the preferences table when missing.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&Preference{})
}
