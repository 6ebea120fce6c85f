package domain

import "fmt"

// ReportDraft is the transient state of the report-issue form. Attachment is
// the opaque name sent by the file control; its contents are never read.
type ReportDraft struct {
	Description string
	Category    Category
	Attachment  string
}

// NewReportDraft builds a draft, rejecting a category outside the option set.
// An empty description and an empty category are both accepted.
func NewReportDraft(description, category, attachment string) (ReportDraft, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return ReportDraft{}, fmt.Errorf("report draft: %w", err)
	}
	return ReportDraft{Description: description, Category: c, Attachment: attachment}, nil
}

// RegistrationDraft is the transient state of the registration form. Name,
// email and password are opaque strings.
type RegistrationDraft struct {
	Name     string
	Email    string
	Password string
	role     Role
}

// NewRegistrationDraft returns an empty draft with the citizen role selected.
func NewRegistrationDraft() RegistrationDraft {
	return RegistrationDraft{role: RoleCitizen}
}

// Role returns the selected role. A zero draft reports RoleCitizen.
func (d RegistrationDraft) Role() Role {
	if d.role == "" {
		return RoleCitizen
	}
	return d.role
}

// SelectRole replaces the selected role. The draft is unchanged on error.
func (d *RegistrationDraft) SelectRole(s string) error {
	r, err := ParseRole(s)
	if err != nil {
		return fmt.Errorf("registration draft: %w", err)
	}
	d.role = r
	return nil
}

// Checked reports whether the radio control for r is checked. Exactly one
// role is checked at any time.
func (d RegistrationDraft) Checked(r Role) bool {
	return d.Role() == r
}

// CitySelection is the transient state of the city picker.
type CitySelection struct {
	City City
}

// NewCitySelection validates s against the city options.
func NewCitySelection(s string) (CitySelection, error) {
	c, err := ParseCity(s)
	if err != nil {
		return CitySelection{}, fmt.Errorf("city selection: %w", err)
	}
	return CitySelection{City: c}, nil
}

// Selected reports whether c is the current selection.
func (s CitySelection) Selected(c City) bool {
	return s.City == c
}

// Summary is the sentence shown under the picker, empty when nothing is
// selected.
func (s CitySelection) Summary() string {
	if s.City == "" {
		return ""
	}
	return fmt.Sprintf("Showing issues reported in %s.", s.City)
}
