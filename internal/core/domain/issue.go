package domain

// IssueStatus is the display status of a reported civic issue.
type IssueStatus string

const (
	StatusPending    IssueStatus = "Pending"
	StatusInProgress IssueStatus = "In Progress"
	StatusResolved   IssueStatus = "Resolved"
)

// StyleVariant is the visual treatment of a status badge.
type StyleVariant int

const (
	StyleOther StyleVariant = iota
	StyleResolved
	StyleInProgress
	StylePending
)

// String returns the variant's slug, used as a CSS class suffix.
func (v StyleVariant) String() string {
	switch v {
	case StyleResolved:
		return "resolved"
	case StyleInProgress:
		return "in-progress"
	case StylePending:
		return "pending"
	default:
		return "other"
	}
}

// StyleFor derives the badge variant from a status. Unknown statuses map to
// StyleOther.
func StyleFor(status IssueStatus) StyleVariant {
	switch status {
	case StatusResolved:
		return StyleResolved
	case StatusInProgress:
		return StyleInProgress
	case StatusPending:
		return StylePending
	default:
		return StyleOther
	}
}

// Issue is a display-only record shown on the dashboards.
type Issue struct {
	ID       int
	Title    string
	Category string
	City     City
	Status   IssueStatus
}

// Style is a shorthand for StyleFor(i.Status).
func (i Issue) Style() StyleVariant {
	return StyleFor(i.Status)
}

// Step is one entry of the landing page "how it works" list.
type Step struct {
	Number      string
	Title       string
	Description string
}

// LandingContent is the static promotional copy of the landing page.
type LandingContent struct {
	Headline     string
	Tagline      string
	Steps        []Step
	Quote        string
	Testimonials []string
}
