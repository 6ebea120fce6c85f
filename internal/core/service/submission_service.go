package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/civicconnect/portal/internal/core/domain"
	"github.com/civicconnect/portal/internal/core/ports"
)

// ReportAcknowledgment is the message shown after a report is submitted.
const ReportAcknowledgment = "Issue submitted successfully!"

type submissionService struct {
	log zerolog.Logger
	now func() time.Time
}

// NewSubmissionService returns a SubmissionService that acknowledges drafts
// and discards them.
func NewSubmissionService(log zerolog.Logger) ports.SubmissionService {
	return &submissionService{log: log, now: time.Now}
}

// SubmitReport acknowledges any report, including an empty one. The
// attachment name is not inspected.
func (s *submissionService) SubmitReport(ctx context.Context, draft domain.ReportDraft) (*ports.Acknowledgment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Free text and credentials stay out of the log; only shape is recorded.
	s.log.Info().
		Str("category", string(draft.Category)).
		Int("description_len", len(draft.Description)).
		Bool("attachment", draft.Attachment != "").
		Msg("issue report acknowledged")

	return &ports.Acknowledgment{
		Message:    ReportAcknowledgment,
		ReceivedAt: s.now().UTC(),
	}, nil
}

// SubmitRegistration has no behaviour beyond logging the selected role.
func (s *submissionService) SubmitRegistration(ctx context.Context, draft domain.RegistrationDraft) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.log.Debug().
		Str("role", string(draft.Role())).
		Msg("registration discarded")
	return nil
}
