package share

import (
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/yanqian/astro-dates/pkg/errors"
)

// Payload is the shareable snapshot embedded in a token.
type Payload struct {
	Year    string `json:"year"`
	Date    string `json:"date"`
	Score   int    `json:"score"`
	SunSign string `json:"sunSign,omitempty"`
}

// Minted is the result of creating a share link.
type Minted struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Config wires the signing parameters.
type Config struct {
	Secret string
	TTL    time.Duration
}

// Service mints and resolves signed share tokens. Tokens carry the shared
// snapshot themselves; nothing is persisted.
type Service interface {
	Mint(payload Payload) (Minted, error)
	Resolve(token string) (Payload, error)
}

type service struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

type shareClaims struct {
	Payload
	jwt.RegisteredClaims
}

// NewService wires up the share domain.
func NewService(cfg Config, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		logger: logger.With("component", "share.service"),
		now:    time.Now,
	}
}

func (s *service) Mint(payload Payload) (Minted, error) {
	if strings.TrimSpace(payload.Date) == "" {
		return Minted{}, apperrors.Wrap("invalid_input", "date is required", nil)
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.TTL)
	claims := shareClaims{
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "astro-dates",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return Minted{}, apperrors.Wrap("token_error", "failed to sign share token", err)
	}
	return Minted{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *service) Resolve(token string) (Payload, error) {
	var claims shareClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return Payload{}, apperrors.Wrap("invalid_token", "share token is invalid or expired", err)
	}
	return claims.Payload, nil
}
