package reminder

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/astro-dates/pkg/errors"
	"github.com/yanqian/astro-dates/pkg/util"
)

// Service manages test-date reminder subscriptions.
type Service interface {
	Create(ctx context.Context, req Request) (Reminder, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the reminder domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "reminder.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Create(ctx context.Context, req Request) (Reminder, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return Reminder{}, apperrors.Wrap("invalid_input", "a valid email address is required", err)
	}
	date := strings.TrimSpace(req.Date)
	if date == "" {
		return Reminder{}, apperrors.Wrap("invalid_input", "date is required", nil)
	}

	exists, err := s.repo.Exists(ctx, email, date)
	if err != nil {
		return Reminder{}, apperrors.Wrap("storage_error", "failed to check existing reminders", err)
	}
	if exists {
		return Reminder{}, apperrors.Wrap("duplicate_reminder", "a reminder for this date already exists", nil)
	}

	r := Reminder{
		ID:        uuid.NewString(),
		Email:     email,
		Date:      date,
		Year:      strings.TrimSpace(req.Year),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, r); err != nil {
		return Reminder{}, apperrors.Wrap("storage_error", "failed to save reminder", err)
	}

	s.logger.Info("reminder created", "date", r.Date, "year", r.Year)
	return r, nil
}
