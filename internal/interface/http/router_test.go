package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/astro-dates/internal/domain/advisor"
	"github.com/yanqian/astro-dates/internal/domain/almanac"
	"github.com/yanqian/astro-dates/internal/domain/reminder"
	"github.com/yanqian/astro-dates/internal/domain/share"
	"github.com/yanqian/astro-dates/internal/infra/config"
	apperrors "github.com/yanqian/astro-dates/pkg/errors"
)

func TestRouter_ListYears(t *testing.T) {
	stubs := newStubs()
	stubs.almanac.years = []string{"2025", "2026"}

	rec := performRequest(http.MethodGet, "/api/v1/years", "", newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, []string{"2025", "2026"}, got["years"])
}

func TestRouter_YearViewNotFound(t *testing.T) {
	stubs := newStubs()

	rec := performRequest(http.MethodGet, "/api/v1/years/1999", "", newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusNotFound, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "date_not_found", errBody["error"]["code"])
}

func TestRouter_RecommendSuccess(t *testing.T) {
	stubs := newStubs()
	stubs.advisor.rankFn = func(ctx context.Context, req advisor.RankRequest) (advisor.RankResponse, error) {
		require.Equal(t, "2025", req.Year)
		require.True(t, req.Filters.PreferWeekends)
		return advisor.RankResponse{Year: "2025", Summary: "a busy year"}, nil
	}

	body := `{"year":"2025","filters":{"preferWeekends":true}}`
	rec := performRequest(http.MethodPost, "/api/v1/recommendations", body, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusOK, rec.Code)

	var got advisor.RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "2025", got.Year)
	require.Equal(t, "a busy year", got.Summary)
}

func TestRouter_RecommendInvalidJSON(t *testing.T) {
	stubs := newStubs()

	rec := performRequest(http.MethodPost, "/api/v1/recommendations", `{"year":2025}`, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_RecommendDetailInvalidInput(t *testing.T) {
	stubs := newStubs()
	stubs.advisor.detailFn = func(ctx context.Context, req advisor.DetailRequest) (advisor.DetailResponse, error) {
		return advisor.DetailResponse{}, apperrors.Wrap("invalid_input", "birth date is required", nil)
	}

	body := `{"year":"2025","date":"July 25, 2025"}`
	rec := performRequest(http.MethodPost, "/api/v1/recommendations/personalized", body, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "birth date is required")
}

func TestRouter_RecommendDetailNotFound(t *testing.T) {
	stubs := newStubs()
	stubs.advisor.detailFn = func(ctx context.Context, req advisor.DetailRequest) (advisor.DetailResponse, error) {
		return advisor.DetailResponse{}, apperrors.Wrap("date_not_found", "no such date", nil)
	}

	body := `{"year":"2025","date":"July 4, 2025","preferences":{"birthDate":"2000-08-15"}}`
	rec := performRequest(http.MethodPost, "/api/v1/recommendations/personalized", body, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_PopularDates(t *testing.T) {
	stubs := newStubs()
	stubs.advisor.popularFn = func(ctx context.Context, limit int) ([]advisor.PopularDate, error) {
		require.Equal(t, 3, limit)
		return []advisor.PopularDate{{Date: "July 25, 2025", Count: 7}}, nil
	}

	rec := performRequest(http.MethodGet, "/api/v1/dates/popular?limit=3", "", newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string][]advisor.PopularDate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, []advisor.PopularDate{{Date: "July 25, 2025", Count: 7}}, got["dates"])
}

func TestRouter_CreateReminderDuplicate(t *testing.T) {
	stubs := newStubs()
	stubs.reminder.createFn = func(ctx context.Context, req reminder.Request) (reminder.Reminder, error) {
		return reminder.Reminder{}, apperrors.Wrap("duplicate_reminder", "a reminder for this date already exists", nil)
	}

	body := `{"email":"a@b.com","date":"July 25, 2025","year":"2025"}`
	rec := performRequest(http.MethodPost, "/api/v1/reminders", body, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusConflict, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "duplicate_reminder", errBody["error"]["code"])
}

func TestRouter_CreateReminderSuccess(t *testing.T) {
	stubs := newStubs()
	stubs.reminder.createFn = func(ctx context.Context, req reminder.Request) (reminder.Reminder, error) {
		require.Equal(t, "a@b.com", req.Email)
		return reminder.Reminder{ID: "id-1", Email: req.Email, Date: req.Date, Year: req.Year}, nil
	}

	body := `{"email":"a@b.com","date":"July 25, 2025","year":"2025"}`
	rec := performRequest(http.MethodPost, "/api/v1/reminders", body, newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_ShareRoundTrip(t *testing.T) {
	stubs := newStubs()
	stubs.share.mintFn = func(payload share.Payload) (share.Minted, error) {
		require.Equal(t, "July 25, 2025", payload.Date)
		return share.Minted{Token: "tok-1"}, nil
	}
	stubs.share.resolveFn = func(token string) (share.Payload, error) {
		require.Equal(t, "tok-1", token)
		return share.Payload{Year: "2025", Date: "July 25, 2025", Score: 82}, nil
	}
	router := newRouterUnderTest(t, stubs)

	rec := performRequest(http.MethodPost, "/api/v1/share", `{"year":"2025","date":"July 25, 2025","score":82}`, router)
	require.Equal(t, http.StatusOK, rec.Code)

	var minted share.Minted
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &minted))
	require.Equal(t, "tok-1", minted.Token)

	rec = performRequest(http.MethodGet, "/api/v1/share/tok-1", "", router)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload share.Payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, 82, payload.Score)
}

func TestRouter_ResolveShareInvalidToken(t *testing.T) {
	stubs := newStubs()
	stubs.share.resolveFn = func(token string) (share.Payload, error) {
		return share.Payload{}, apperrors.Wrap("invalid_token", "share token is invalid or expired", nil)
	}

	rec := performRequest(http.MethodGet, "/api/v1/share/garbage", "", newRouterUnderTest(t, stubs))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_token", errBody["error"]["code"])
}

func performRequest(method, path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

type routerStubs struct {
	almanac  *stubAlmanac
	advisor  *stubAdvisor
	reminder *stubReminder
	share    *stubShare
}

func newStubs() *routerStubs {
	return &routerStubs{
		almanac:  &stubAlmanac{},
		advisor:  &stubAdvisor{},
		reminder: &stubReminder{},
		share:    &stubShare{},
	}
}

func newRouterUnderTest(t *testing.T, stubs *routerStubs) *http.Server {
	t.Helper()
	handler := NewHandler(stubs.almanac, stubs.advisor, stubs.reminder, stubs.share, 10, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubAlmanac struct {
	years []string
	views map[string]almanac.YearView
}

func (s *stubAlmanac) Years() []string {
	return s.years
}

func (s *stubAlmanac) YearView(year string) almanac.YearView {
	if view, ok := s.views[year]; ok {
		return view
	}
	return almanac.YearView{Year: year}
}

type stubAdvisor struct {
	rankFn    func(ctx context.Context, req advisor.RankRequest) (advisor.RankResponse, error)
	detailFn  func(ctx context.Context, req advisor.DetailRequest) (advisor.DetailResponse, error)
	popularFn func(ctx context.Context, limit int) ([]advisor.PopularDate, error)
}

func (s *stubAdvisor) Rank(ctx context.Context, req advisor.RankRequest) (advisor.RankResponse, error) {
	if s.rankFn != nil {
		return s.rankFn(ctx, req)
	}
	return advisor.RankResponse{}, nil
}

func (s *stubAdvisor) Detail(ctx context.Context, req advisor.DetailRequest) (advisor.DetailResponse, error) {
	if s.detailFn != nil {
		return s.detailFn(ctx, req)
	}
	return advisor.DetailResponse{}, nil
}

func (s *stubAdvisor) Popular(ctx context.Context, limit int) ([]advisor.PopularDate, error) {
	if s.popularFn != nil {
		return s.popularFn(ctx, limit)
	}
	return nil, nil
}

type stubReminder struct {
	createFn func(ctx context.Context, req reminder.Request) (reminder.Reminder, error)
}

func (s *stubReminder) Create(ctx context.Context, req reminder.Request) (reminder.Reminder, error) {
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return reminder.Reminder{}, nil
}

type stubShare struct {
	mintFn    func(payload share.Payload) (share.Minted, error)
	resolveFn func(token string) (share.Payload, error)
}

func (s *stubShare) Mint(payload share.Payload) (share.Minted, error) {
	if s.mintFn != nil {
		return s.mintFn(payload)
	}
	return share.Minted{}, nil
}

func (s *stubShare) Resolve(token string) (share.Payload, error) {
	if s.resolveFn != nil {
		return s.resolveFn(token)
	}
	return share.Payload{}, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
