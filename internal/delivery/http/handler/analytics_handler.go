package handler

import (
	"strings"
	"time"

	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/domain/portfolio"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const dateOnly = "2006-01-02"

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router, admin Guard) {
	if r == nil {
		return
	}

	grp := r.Group("/analytics")
	grp.Post("/pageview", h.Track)
	grp.Get("/views", admin, h.Views)
	grp.Get("/summary", admin, h.Summary)
}

func (h *AnalyticsHandler) Track(c fiber.Ctx) error {
	in, err := portfolio.DecodePageViewInput(c.Body())
	if err != nil {
		return fromUsecase(err, "Failed to track page view", "")
	}

	v, err := h.uc.RecordPageView(c.Context(), in)
	if err != nil {
		return fromUsecase(err, "Failed to track page view", "")
	}
	return response.Success(c, fiber.StatusOK, v)
}

func (h *AnalyticsHandler) Views(c fiber.Ctx) error {
	filter, err := pageViewFilter(c)
	if err != nil {
		return err
	}

	views, err := h.uc.ListPageViews(c.Context(), filter)
	if err != nil {
		return fromUsecase(err, "Failed to fetch page views", "")
	}
	return response.Success(c, fiber.StatusOK, views)
}

func (h *AnalyticsHandler) Summary(c fiber.Ctx) error {
	filter, err := pageViewFilter(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.Summary(c.Context(), filter)
	if err != nil {
		return fromUsecase(err, "Failed to fetch page view summary", "")
	}
	return response.Success(c, fiber.StatusOK, stats)
}

// pageViewFilter reads ?from and ?to as RFC 3339 timestamps or plain dates.
// A plain "to" date covers that whole day.
func pageViewFilter(c fiber.Ctx) (portfolio.PageViewFilter, error) {
	var (
		f      portfolio.PageViewFilter
		fields []portfolio.FieldError
	)

	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		t, _, err := parseTime(raw)
		if err != nil {
			fields = append(fields, portfolio.FieldError{Field: "from", Message: "must be an RFC 3339 timestamp or YYYY-MM-DD date"})
		} else {
			f.From = t
		}
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		t, wholeDay, err := parseTime(raw)
		if err != nil {
			fields = append(fields, portfolio.FieldError{Field: "to", Message: "must be an RFC 3339 timestamp or YYYY-MM-DD date"})
		} else {
			if wholeDay {
				t = t.Add(24*time.Hour - time.Microsecond)
			}
			f.To = t
		}
	}

	if len(fields) > 0 {
		ve := &portfolio.ValidationError{Fields: fields}
		return portfolio.PageViewFilter{}, middleware.NewAppError(fiber.StatusBadRequest, ve.Error(), ve.Fields, ve)
	}
	return f, nil
}

func parseTime(raw string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), false, nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), true, nil
}
