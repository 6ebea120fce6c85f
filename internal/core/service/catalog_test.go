package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicconnect/portal/internal/core/domain"
)

func TestCatalog_CitizenIssues(t *testing.T) {
	want := []domain.Issue{
		{ID: 1, Title: "Pothole near school", Status: domain.StatusInProgress},
		{ID: 2, Title: "Streetlight not working", Status: domain.StatusResolved},
	}
	if diff := cmp.Diff(want, NewCatalog().CitizenIssues()); diff != "" {
		t.Fatalf("citizen issues mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_AuthorityIssues(t *testing.T) {
	want := []domain.Issue{
		{ID: 1, Title: "Pothole near school", Category: "Road", City: domain.CityDelhi, Status: domain.StatusInProgress},
		{ID: 2, Title: "Overflowing garbage bin", Category: "Sanitation", City: domain.CityMumbai, Status: domain.StatusPending},
	}
	if diff := cmp.Diff(want, NewCatalog().AuthorityIssues()); diff != "" {
		t.Fatalf("authority issues mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_ReturnsIndependentCopies(t *testing.T) {
	c := NewCatalog()

	issues := c.CitizenIssues()
	issues[0].Title = "mutated"
	assert.Equal(t, "Pothole near school", c.CitizenIssues()[0].Title)

	landing := c.Landing()
	landing.Steps[0].Title = "mutated"
	landing.Testimonials[0] = "mutated"
	fresh := c.Landing()
	assert.Equal(t, "Report an Issue", fresh.Steps[0].Title)
	assert.Equal(t, "I reported a pothole and it was fixed in 3 days!", fresh.Testimonials[0])
}

func TestCatalog_Landing(t *testing.T) {
	l := NewCatalog().Landing()
	require.Len(t, l.Steps, 3)
	require.Len(t, l.Testimonials, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{l.Steps[0].Number, l.Steps[1].Number, l.Steps[2].Number})
	assert.NotEmpty(t, l.Quote)
}
