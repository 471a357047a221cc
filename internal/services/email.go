package services

import (
	"context"
	"fmt"
	"log/slog"

	"medprep/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	opsInbox string
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that sends internal ops mail to the
// given inbox using the Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, opsInbox string, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, opsInbox: opsInbox, logger: logger}
}

// SendAssignmentDigest sends the post-commit digest of assigned interviews
// using the "assignment_digest" template.
func (s *emailService) SendAssignmentDigest(ctx context.Context, data *domain.AssignmentDigestData) error {
	if data == nil || len(data.Entries) == 0 {
		return fmt.Errorf("assignment digest data is empty")
	}
	if s.opsInbox == "" {
		s.logger.Warn("ops inbox not configured, skipping assignment digest")
		return nil
	}
	subject, htmlBody, textBody, err := s.renderer.Render("assignment_digest", data)
	if err != nil {
		return fmt.Errorf("failed to render assignment_digest template: %w", err)
	}
	if err := s.mailer.Send(s.opsInbox, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send assignment digest: %w", err)
	}
	s.logger.Info("assignment digest sent", "to", s.opsInbox, "assignments", len(data.Entries))
	return nil
}
