package address

import "time"

type Address struct {
	ID           string    `json:"id"`
	Street       string    `json:"street"`
	Number       string    `json:"number,omitempty"`
	Complement   string    `json:"complement,omitempty"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	Type         string    `json:"type"`
	Reference    string    `json:"reference,omitempty"`
	EmployeeID   string    `json:"employeeId,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
