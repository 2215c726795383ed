package testdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Credentials holds the application's well-known test accounts keyed by role
// (standard, locked, problem, ...), all sharing one password.
type Credentials struct {
	Users    map[string]string `yaml:"users"`
	Password string            `yaml:"password"`
}

// Product is static reference data about one catalog entry.
type Product struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

// CheckoutInfo holds the form fields for the checkout information step.
type CheckoutInfo struct {
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	PostalCode string `yaml:"postal_code"`
}

// Data is the full test-data document.
type Data struct {
	Credentials Credentials        `yaml:"credentials"`
	Products    map[string]Product `yaml:"products"`
	Checkout    CheckoutInfo       `yaml:"checkout"`
}

// User returns the username for a role, or an error naming the missing role.
func (d *Data) User(role string) (string, error) {
	u, ok := d.Credentials.Users[role]
	if !ok {
		return "", fmt.Errorf("test data: no user for role %q", role)
	}
	return u, nil
}

// Load reads and decodes a YAML test-data file.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data: %w", err)
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse test data %s: %w", path, err)
	}
	return &data, nil
}
