package ports

import (
	"context"
	"time"

	"github.com/civicconnect/portal/internal/core/domain"
)

// Acknowledgment is the user-visible receipt of a form submission.
type Acknowledgment struct {
	Message    string
	ReceivedAt time.Time
}

// SubmissionService accepts form drafts. Nothing is persisted or forwarded;
// the draft is dropped once the call returns.
type SubmissionService interface {
	SubmitReport(ctx context.Context, draft domain.ReportDraft) (*Acknowledgment, error)
	SubmitRegistration(ctx context.Context, draft domain.RegistrationDraft) error
}
