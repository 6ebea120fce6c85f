package ports

import "github.com/civicconnect/portal/internal/core/domain"

// Catalog supplies the read-only sample content the views are built with.
// Every call returns a fresh copy; callers may keep and modify it freely.
type Catalog interface {
	Landing() domain.LandingContent
	CitizenIssues() []domain.Issue
	AuthorityIssues() []domain.Issue
}
