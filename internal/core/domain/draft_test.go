package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportDraft_AcceptsEmpty(t *testing.T) {
	d, err := NewReportDraft("", "", "")
	require.NoError(t, err)
	assert.Equal(t, ReportDraft{}, d)
}

func TestNewReportDraft_Categories(t *testing.T) {
	for _, c := range Categories() {
		d, err := NewReportDraft("desc", string(c), "photo.jpg")
		require.NoError(t, err, c)
		assert.Equal(t, c, d.Category)
		assert.Equal(t, "photo.jpg", d.Attachment)
	}

	_, err := NewReportDraft("desc", "Earthquake", "")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestRegistrationDraft_DefaultRole(t *testing.T) {
	assert.Equal(t, RoleCitizen, NewRegistrationDraft().Role())
	assert.Equal(t, RoleCitizen, RegistrationDraft{}.Role())
}

func TestRegistrationDraft_RoleIsMutuallyExclusive(t *testing.T) {
	sequences := [][]string{
		{"admin", "citizen"},
		{"citizen", "admin", "admin"},
		{"admin", "admin", "citizen", "admin"},
		{""},
	}
	for _, seq := range sequences {
		d := NewRegistrationDraft()
		for _, s := range seq {
			require.NoError(t, d.SelectRole(s))

			checked := 0
			for _, r := range Roles() {
				if d.Checked(r) {
					checked++
				}
			}
			assert.Equal(t, 1, checked, "sequence %v", seq)
		}
	}
}

func TestRegistrationDraft_SelectRoleRejectsUnknown(t *testing.T) {
	d := NewRegistrationDraft()
	require.NoError(t, d.SelectRole("admin"))

	err := d.SelectRole("superuser")
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Equal(t, RoleAdmin, d.Role(), "failed selection must not change the draft")
}

func TestCitySelection_Summary(t *testing.T) {
	s, err := NewCitySelection("Mumbai")
	require.NoError(t, err)
	assert.Contains(t, s.Summary(), "Mumbai")
	assert.True(t, s.Selected(CityMumbai))
	assert.False(t, s.Selected(CityDelhi))

	empty, err := NewCitySelection("")
	require.NoError(t, err)
	assert.Empty(t, empty.Summary())

	_, err = NewCitySelection("Atlantis")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleCitizen, r)

	r, err = ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)
	assert.Equal(t, "Admin", r.Label())
}
