package mockapi

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedUser struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type seedEmployee struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone"`
	Position   string `yaml:"position"`
	Department string `yaml:"department"`
	HireDate   string `yaml:"hireDate"`
	Salary     string `yaml:"salary"`
	IsActive   bool   `yaml:"isActive"`
}

type seedAddress struct {
	ID           string `yaml:"id"`
	Street       string `yaml:"street"`
	Number       string `yaml:"number"`
	Complement   string `yaml:"complement"`
	Neighborhood string `yaml:"neighborhood"`
	City         string `yaml:"city"`
	State        string `yaml:"state"`
	ZipCode      string `yaml:"zipCode"`
	Type         string `yaml:"type"`
	EmployeeID   string `yaml:"employeeId"`
	IsActive     bool   `yaml:"isActive"`
}

// Seed is the initial content of the fake.
type Seed struct {
	Users     []seedUser     `yaml:"users"`
	Employees []seedEmployee `yaml:"employees"`
	Addresses []seedAddress  `yaml:"addresses"`
}

// DefaultSeed returns the embedded development fixtures.
func DefaultSeed() (Seed, error) {
	return ParseSeed(seedYAML)
}

func ParseSeed(raw []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Seed{}, fmt.Errorf("mockapi: parse seed: %w", err)
	}
	for _, e := range s.Employees {
		if _, err := decimal.NewFromString(e.Salary); err != nil {
			return Seed{}, fmt.Errorf("mockapi: employee %s salary: %w", e.ID, err)
		}
	}
	return s, nil
}
