package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vadim/neo-studio/internal/domain/content/aggregate"
	"github.com/vadim/neo-studio/internal/domain/content/entity"
	"github.com/vadim/neo-studio/internal/httpx/response"
)

// Trend handles GET /views/trend
func (h *ContentHandler) Trend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, h.policy.Trend(r.Context()))
	}
}

// Platforms handles GET /views/platforms
func (h *ContentHandler) Platforms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries := h.policy.PlatformSummary(r.Context())
		if summaries == nil {
			summaries = []aggregate.PlatformSummary{}
		}
		response.OK(w, map[string]any{"platforms": summaries})
	}
}

// CalendarDayResponse is one bucket of the calendar view
type CalendarDayResponse struct {
	Date  string                 `json:"date"`
	Posts []entity.ScheduledPost `json:"posts"`
}

// Calendar handles GET /views/calendar
func (h *ContentHandler) Calendar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buckets := h.policy.Calendar(r.Context())

		days := make([]CalendarDayResponse, 0, buckets.Len())
		for _, day := range buckets.Days() {
			days = append(days, CalendarDayResponse{Date: day, Posts: buckets.Get(day)})
		}

		response.OK(w, map[string]any{"days": days})
	}
}

// Week handles GET /views/week?date=YYYY-MM-DD
func (h *ContentHandler) Week() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reference time.Time
		if d := r.URL.Query().Get("date"); d != "" {
			t, err := time.Parse(aggregate.DayLayout, d)
			if err != nil {
				response.BadRequest(w, "invalid date format, use YYYY-MM-DD")
				return
			}
			reference = t
		}

		response.OK(w, map[string]any{"days": h.policy.WeekCalendar(r.Context(), reference)})
	}
}

// Upcoming handles GET /views/upcoming?limit=N
func (h *ContentHandler) Upcoming() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if l := r.URL.Query().Get("limit"); l != "" {
			li, err := strconv.Atoi(l)
			if err != nil || li < 1 {
				response.BadRequest(w, "invalid limit")
				return
			}
			limit = li
		}

		posts := h.policy.Upcoming(r.Context(), limit)
		response.OK(w, map[string]any{
			"posts": posts,
			"total": len(posts),
		})
	}
}

// Status handles GET /views/status
func (h *ContentHandler) Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]any{"statuses": h.policy.StatusSummary(r.Context())})
	}
}

// Overview handles GET /views/overview
func (h *ContentHandler) Overview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, h.policy.Overview(r.Context()))
	}
}
