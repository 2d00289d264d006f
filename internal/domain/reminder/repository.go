package reminder

import "context"

// Repository persists reminder subscriptions.
type Repository interface {
	Save(ctx context.Context, r Reminder) error
	Exists(ctx context.Context, email, date string) (bool, error)
}
