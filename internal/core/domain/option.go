package domain

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownOption is returned when a selection is outside its option set.
var ErrUnknownOption = errors.New("unknown option")

// Category is an issue category offered by the report form.
type Category string

const (
	CategoryPothole     Category = "Pothole"
	CategoryGarbage     Category = "Garbage"
	CategoryStreetlight Category = "Streetlight"
	CategoryWaterSupply Category = "Water Supply"
)

// City is a city offered by the city picker.
type City string

const (
	CityDelhi     City = "Delhi"
	CityMumbai    City = "Mumbai"
	CityBangalore City = "Bangalore"
	CityChennai   City = "Chennai"
)

// Role is the account type chosen on the registration form.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleAdmin   Role = "admin"
)

// Label is the human-readable radio label of the role.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleCitizen:
		return "Citizen"
	default:
		return string(r)
	}
}

// Categories returns the report form categories in display order.
func Categories() []Category {
	return []Category{CategoryPothole, CategoryGarbage, CategoryStreetlight, CategoryWaterSupply}
}

// Cities returns the city picker options in display order.
func Cities() []City {
	return []City{CityDelhi, CityMumbai, CityBangalore, CityChennai}
}

// Roles returns the registration roles in display order.
func Roles() []Role {
	return []Role{RoleCitizen, RoleAdmin}
}

// ParseCategory accepts the empty placeholder or one of Categories.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if s == "" || slices.Contains(Categories(), c) {
		return c, nil
	}
	return "", fmt.Errorf("category %q: %w", s, ErrUnknownOption)
}

// ParseCity accepts the empty placeholder or one of Cities.
func ParseCity(s string) (City, error) {
	c := City(s)
	if s == "" || slices.Contains(Cities(), c) {
		return c, nil
	}
	return "", fmt.Errorf("city %q: %w", s, ErrUnknownOption)
}

// ParseRole maps the empty string to RoleCitizen and otherwise requires one
// of Roles.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleCitizen, nil
	}
	r := Role(s)
	if slices.Contains(Roles(), r) {
		return r, nil
	}
	return "", fmt.Errorf("role %q: %w", s, ErrUnknownOption)
}
