package reminder

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/astro-dates/pkg/errors"
)

type stubRepo struct {
	saved  []Reminder
	exists bool
	err    error
}

func (s *stubRepo) Save(_ context.Context, r Reminder) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, r)
	return nil
}

func (s *stubRepo) Exists(_ context.Context, email, date string) (bool, error) {
	return s.exists, s.err
}

func newTestService(repo Repository) *service {
	return &service{
		repo:   repo,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestCreateReminder(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(repo)

	r, err := svc.Create(context.Background(), Request{
		Email: "Student@Example.com",
		Date:  "July 25, 2025",
		Year:  "2025",
	})
	require.NoError(t, err)
	require.NotEmpty(t, r.ID)
	require.Equal(t, "student@example.com", r.Email)
	require.Equal(t, "July 25, 2025", r.Date)
	require.Len(t, repo.saved, 1)
}

func TestCreateReminderInvalidEmail(t *testing.T) {
	svc := newTestService(&stubRepo{})
	_, err := svc.Create(context.Background(), Request{Email: "not-an-email", Date: "July 25, 2025"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestCreateReminderMissingDate(t *testing.T) {
	svc := newTestService(&stubRepo{})
	_, err := svc.Create(context.Background(), Request{Email: "a@b.com"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestCreateReminderDuplicate(t *testing.T) {
	svc := newTestService(&stubRepo{exists: true})
	_, err := svc.Create(context.Background(), Request{Email: "a@b.com", Date: "July 25, 2025"})
	require.True(t, apperrors.IsCode(err, "duplicate_reminder"))
}
