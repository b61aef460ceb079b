package setting

import "time"

// Setting is a key/value configuration entry. Value holds a string, a
// float64, a bool, a list or a JSON object as decoded from the API.
type Setting struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Value       any       `json:"value"`
	Group       string    `json:"group"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
