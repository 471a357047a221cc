package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medprep/internal/domain"
)

type mockMailer struct {
	to, subject string
	err         error
	sends       int
}

func (m *mockMailer) Send(to, subject, html, text string) error {
	m.sends++
	m.to, m.subject = to, subject
	return m.err
}

type mockRenderer struct {
	err error
}

func (m *mockRenderer) Render(name string, data any) (string, string, string, error) {
	if m.err != nil {
		return "", "", "", m.err
	}
	return "subject " + name, "<p>html</p>", "text", nil
}

func TestEmailService_SendAssignmentDigest(t *testing.T) {
	digest := &domain.AssignmentDigestData{
		Entries: []domain.DigestEntry{{StudentName: "Jane Doe", TutorName: "Dr. Amara Okafor", Date: "2024-06-10", Time: "14:00"}},
	}

	t.Run("sends to ops inbox", func(t *testing.T) {
		mailer := &mockMailer{}
		svc := NewEmailService(mailer, &mockRenderer{}, "ops@medprep.example", testLogger())

		require.NoError(t, svc.SendAssignmentDigest(context.Background(), digest))
		assert.Equal(t, 1, mailer.sends)
		assert.Equal(t, "ops@medprep.example", mailer.to)
		assert.Equal(t, "subject assignment_digest", mailer.subject)
	})

	t.Run("no ops inbox configured", func(t *testing.T) {
		mailer := &mockMailer{}
		svc := NewEmailService(mailer, &mockRenderer{}, "", testLogger())

		require.NoError(t, svc.SendAssignmentDigest(context.Background(), digest))
		assert.Equal(t, 0, mailer.sends)
	})

	t.Run("empty digest", func(t *testing.T) {
		svc := NewEmailService(&mockMailer{}, &mockRenderer{}, "ops@medprep.example", testLogger())
		require.Error(t, svc.SendAssignmentDigest(context.Background(), &domain.AssignmentDigestData{}))
		require.Error(t, svc.SendAssignmentDigest(context.Background(), nil))
	})

	t.Run("render failure", func(t *testing.T) {
		svc := NewEmailService(&mockMailer{}, &mockRenderer{err: errors.New("missing template")}, "ops@medprep.example", testLogger())
		require.Error(t, svc.SendAssignmentDigest(context.Background(), digest))
	})

	t.Run("send failure", func(t *testing.T) {
		svc := NewEmailService(&mockMailer{err: errors.New("ses throttled")}, &mockRenderer{}, "ops@medprep.example", testLogger())
		require.Error(t, svc.SendAssignmentDigest(context.Background(), digest))
	})
}
