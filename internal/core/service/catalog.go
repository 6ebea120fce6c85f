package service

import (
	"slices"

	"github.com/civicconnect/portal/internal/core/domain"
)

// Sample content shown by the portal. These values are never handed out
// directly; Catalog returns copies.
var (
	landingContent = domain.LandingContent{
		Headline: "Empowering Citizens, Building Better Cities",
		Tagline:  "Report civic issues instantly and track their resolution. Together, we make our city smarter, cleaner, and safer.",
		Steps: []domain.Step{
			{Number: "1", Title: "Report an Issue", Description: "Citizens raise a complaint with text, photo, or video."},
			{Number: "2", Title: "Authorities Review", Description: "Officials receive the report and categorize the issue."},
			{Number: "3", Title: "Problem Solved", Description: "Authorities take action and mark the issue as resolved."},
		},
		Quote: "The growth and development of a city depends on active citizen participation. This platform bridges the gap between people and governance.",
		Testimonials: []string{
			"I reported a pothole and it was fixed in 3 days!",
			"Finally, my complaints are being heard.",
			"Best way to improve our city together!",
		},
	}

	citizenIssues = []domain.Issue{
		{ID: 1, Title: "Pothole near school", Status: domain.StatusInProgress},
		{ID: 2, Title: "Streetlight not working", Status: domain.StatusResolved},
	}

	authorityIssues = []domain.Issue{
		{ID: 1, Title: "Pothole near school", Category: "Road", City: domain.CityDelhi, Status: domain.StatusInProgress},
		{ID: 2, Title: "Overflowing garbage bin", Category: "Sanitation", City: domain.CityMumbai, Status: domain.StatusPending},
	}
)

// Catalog serves the hardcoded sample content.
type Catalog struct{}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// Landing returns a copy of the landing page content.
func (c *Catalog) Landing() domain.LandingContent {
	out := landingContent
	out.Steps = slices.Clone(landingContent.Steps)
	out.Testimonials = slices.Clone(landingContent.Testimonials)
	return out
}

// CitizenIssues returns a copy of the issues listed on the citizen dashboard.
func (c *Catalog) CitizenIssues() []domain.Issue {
	return slices.Clone(citizenIssues)
}

// AuthorityIssues returns a copy of the issues listed on the authorities dashboard.
func (c *Catalog) AuthorityIssues() []domain.Issue {
	return slices.Clone(authorityIssues)
}
