package preference

import "time"

// Preference holds the per-user UI state that outlives a session.
type Preference struct {
	UserID           string    `gorm:"column:user_id;primaryKey" json:"userId"`
	SidebarCollapsed bool      `gorm:"column:sidebar_collapsed;not null" json:"sidebarCollapsed"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Preference) TableName() string {
	return "user_preferences"
}

// Default is what a user sees before saving anything.
func Default(userID string) Preference {
	return Preference{UserID: userID}
}
