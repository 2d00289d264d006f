package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/astro-dates/internal/domain/advisor"
	"github.com/yanqian/astro-dates/internal/domain/almanac"
	"github.com/yanqian/astro-dates/internal/domain/reminder"
	"github.com/yanqian/astro-dates/internal/domain/share"
	apperrors "github.com/yanqian/astro-dates/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	almanacSvc   almanac.Service
	advisorSvc   advisor.Service
	reminderSvc  reminder.Service
	shareSvc     share.Service
	popularLimit int
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(almanacSvc almanac.Service, advisorSvc advisor.Service, reminderSvc reminder.Service, shareSvc share.Service, popularLimit int, logger *slog.Logger) *Handler {
	return &Handler{
		almanacSvc:   almanacSvc,
		advisorSvc:   advisorSvc,
		reminderSvc:  reminderSvc,
		shareSvc:     shareSvc,
		popularLimit: popularLimit,
		logger:       logger.With("component", "http.handler"),
	}
}

// ListYears returns the years the catalog covers.
func (h *Handler) ListYears(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"years": h.almanacSvc.Years()})
}

// YearView returns the merged catalog for one year, unranked.
func (h *Handler) YearView(c *gin.Context) {
	year := c.Param("year")
	view := h.almanacSvc.YearView(year)
	if len(view.Dates) == 0 {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "date_not_found", "no data for year "+year, nil))
		return
	}
	c.JSON(http.StatusOK, view)
}

// Recommend ranks the candidate dates of a year by the request's filters.
func (h *Handler) Recommend(c *gin.Context) {
	var req advisor.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.advisorSvc.Rank(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, mapDomainError(err, "rank_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RecommendDetail returns the personalized breakdown of a single date.
func (h *Handler) RecommendDetail(c *gin.Context) {
	var req advisor.DetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.advisorSvc.Detail(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, mapDomainError(err, "detail_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PopularDates returns the most viewed test dates.
func (h *Handler) PopularDates(c *gin.Context) {
	limit := h.popularLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed < 100 {
			limit = parsed
		}
	}

	items, err := h.advisorSvc.Popular(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "popular_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": items})
}

// CreateReminder subscribes an email to a test-date reminder.
func (h *Handler) CreateReminder(c *gin.Context) {
	var req reminder.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	created, err := h.reminderSvc.Create(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, mapDomainError(err, "reminder_failed"))
		return
	}

	c.JSON(http.StatusCreated, created)
}

// CreateShare mints a signed token for a shareable result snapshot.
func (h *Handler) CreateShare(c *gin.Context) {
	var payload share.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	minted, err := h.shareSvc.Mint(payload)
	if err != nil {
		abortWithError(c, mapDomainError(err, "share_failed"))
		return
	}

	c.JSON(http.StatusOK, minted)
}

// ResolveShare validates a share token and returns its snapshot.
func (h *Handler) ResolveShare(c *gin.Context) {
	payload, err := h.shareSvc.Resolve(c.Param("token"))
	if err != nil {
		abortWithError(c, mapDomainError(err, "share_failed"))
		return
	}
	c.JSON(http.StatusOK, payload)
}

func mapDomainError(err error, fallbackCode string) *HTTPError {
	status := http.StatusInternalServerError
	code := fallbackCode
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "date_not_found"):
		status = http.StatusNotFound
		code = "date_not_found"
	case apperrors.IsCode(err, "duplicate_reminder"):
		status = http.StatusConflict
		code = "duplicate_reminder"
	case apperrors.IsCode(err, "invalid_token"):
		status = http.StatusUnauthorized
		code = "invalid_token"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
