package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vadim/neo-studio/internal/domain/content/aggregate"
	"github.com/vadim/neo-studio/internal/domain/content/entity"
	"github.com/vadim/neo-studio/internal/domain/content/policy"
	"github.com/vadim/neo-studio/internal/httpx/response"
)

// ContentPolicy defines the interface for content operations
// Interface is defined by consumer (handler), not provider (policy)
type ContentPolicy interface {
	Accounts(ctx context.Context) []entity.Account
	ConnectedAccounts(ctx context.Context) []entity.Account
	CategoryTemplates(ctx context.Context) []entity.CategoryTemplate
	Ideas(ctx context.Context) []entity.PostIdea
	Posts(ctx context.Context) []entity.ScheduledPost
	Insights(ctx context.Context) []entity.EngagementInsight

	GenerateIdea(ctx context.Context, in policy.GenerateIdeaInput) (*entity.PostIdea, error)
	SchedulePost(ctx context.Context, in policy.SchedulePostInput) (*entity.ScheduledPost, error)
	ScheduleIdea(ctx context.Context, in policy.ScheduleIdeaInput) (*entity.ScheduledPost, error)
	AutoPopulatePipeline(ctx context.Context, platform entity.Platform) (*policy.PipelineOutput, error)

	Trend(ctx context.Context) aggregate.Trend
	PlatformSummary(ctx context.Context) []aggregate.PlatformSummary
	Calendar(ctx context.Context) *aggregate.DayBuckets
	WeekCalendar(ctx context.Context, reference time.Time) []aggregate.CalendarDay
	Upcoming(ctx context.Context, limit int) []entity.ScheduledPost
	StatusSummary(ctx context.Context) []aggregate.StatusCount
	Overview(ctx context.Context) aggregate.Overview
	SmartSlot(ctx context.Context, platform entity.Platform) (aggregate.SmartSlot, error)
}

// ContentHandler handles HTTP requests for the content studio
type ContentHandler struct {
	policy ContentPolicy
}

// NewContentHandler creates a new content handler
func NewContentHandler(p ContentPolicy) *ContentHandler {
	return &ContentHandler{policy: p}
}

// RegisterRoutes registers content routes
func (h *ContentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/accounts", h.ListAccounts())
	r.Get("/category-templates", h.ListTemplates())
	r.Get("/insights", h.ListInsights())

	r.Route("/ideas", func(r chi.Router) {
		r.Get("/", h.ListIdeas())
		r.Post("/", h.GenerateIdea())
		r.Post("/{id}/schedule", h.ScheduleIdea())
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.ListPosts())
		r.Post("/", h.SchedulePost())
	})

	r.Post("/pipeline/auto-populate", h.AutoPopulate())
	r.Get("/platforms/{platform}/slot", h.SmartSlot())

	r.Route("/views", func(r chi.Router) {
		r.Get("/trend", h.Trend())
		r.Get("/platforms", h.Platforms())
		r.Get("/calendar", h.Calendar())
		r.Get("/week", h.Week())
		r.Get("/upcoming", h.Upcoming())
		r.Get("/status", h.Status())
		r.Get("/overview", h.Overview())
	})
}

// ListAccounts handles GET /accounts
func (h *ContentHandler) ListAccounts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var accounts []entity.Account
		if connected, _ := strconv.ParseBool(r.URL.Query().Get("connected")); connected {
			accounts = h.policy.ConnectedAccounts(r.Context())
		} else {
			accounts = h.policy.Accounts(r.Context())
		}

		response.OK(w, map[string]any{
			"accounts": accounts,
			"total":    len(accounts),
		})
	}
}

// ListTemplates handles GET /category-templates
func (h *ContentHandler) ListTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates := h.policy.CategoryTemplates(r.Context())
		response.OK(w, map[string]any{
			"category_templates": templates,
			"total":              len(templates),
		})
	}
}

// ListInsights handles GET /insights
func (h *ContentHandler) ListInsights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		insights := h.policy.Insights(r.Context())
		response.OK(w, map[string]any{
			"insights": insights,
			"total":    len(insights),
		})
	}
}

// ListIdeas handles GET /ideas
func (h *ContentHandler) ListIdeas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideas := h.policy.Ideas(r.Context())
		response.OK(w, map[string]any{
			"ideas": ideas,
			"total": len(ideas),
		})
	}
}

// GenerateIdeaRequest represents the request body for generating an idea
type GenerateIdeaRequest struct {
	Category string `json:"category"`
	Topic    string `json:"topic"`
	Mood     string `json:"mood"` // inspirational, educational, promotional
}

// GenerateIdea handles POST /ideas
func (h *ContentHandler) GenerateIdea() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateIdeaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		idea, err := h.policy.GenerateIdea(r.Context(), policy.GenerateIdeaInput{
			Category: req.Category,
			Topic:    req.Topic,
			Mood:     entity.Mood(req.Mood),
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.Created(w, idea)
	}
}

// ScheduleIdeaRequest represents the request body for scheduling an idea
type ScheduleIdeaRequest struct {
	AccountID    string `json:"account_id"`
	Platform     string `json:"platform,omitempty"` // defaults to the idea's first platform
	ScheduledFor string `json:"scheduled_for"`      // RFC3339 or YYYY-MM-DDTHH:MM
}

// ScheduleIdea handles POST /ideas/{id}/schedule
func (h *ContentHandler) ScheduleIdea() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req ScheduleIdeaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		var platform entity.Platform
		if req.Platform != "" {
			p, err := entity.ParsePlatform(req.Platform)
			if err != nil {
				response.BadRequest(w, err.Error())
				return
			}
			platform = p
		}

		post, err := h.policy.ScheduleIdea(r.Context(), policy.ScheduleIdeaInput{
			IdeaID:       id,
			AccountID:    req.AccountID,
			Platform:     platform,
			ScheduledFor: req.ScheduledFor,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.Created(w, post)
	}
}

// ListPosts handles GET /posts
func (h *ContentHandler) ListPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := h.policy.Posts(r.Context())
		response.OK(w, map[string]any{
			"posts": posts,
			"total": len(posts),
		})
	}
}

// SchedulePostRequest represents the request body for scheduling a post
type SchedulePostRequest struct {
	AccountID    string   `json:"account_id"`
	Platform     string   `json:"platform"`
	Category     string   `json:"category"`
	Topic        string   `json:"topic"`
	Caption      string   `json:"caption"`
	Hashtags     []string `json:"hashtags"`
	MediaType    string   `json:"media_type"`
	ScheduledFor string   `json:"scheduled_for"` // RFC3339 or YYYY-MM-DDTHH:MM
}

// SchedulePost handles POST /posts
func (h *ContentHandler) SchedulePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SchedulePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		post, err := h.policy.SchedulePost(r.Context(), policy.SchedulePostInput{
			AccountID:    req.AccountID,
			Platform:     entity.Platform(req.Platform),
			Category:     req.Category,
			Topic:        req.Topic,
			Caption:      req.Caption,
			Hashtags:     req.Hashtags,
			MediaType:    entity.MediaType(req.MediaType),
			ScheduledFor: req.ScheduledFor,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.Created(w, post)
	}
}

// AutoPopulateRequest represents the request body for the auto-populate action
type AutoPopulateRequest struct {
	Platform string `json:"platform"`
}

// AutoPopulate handles POST /pipeline/auto-populate
func (h *ContentHandler) AutoPopulate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AutoPopulateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		platform, err := entity.ParsePlatform(req.Platform)
		if err != nil {
			response.BadRequest(w, err.Error())
			return
		}

		out, err := h.policy.AutoPopulatePipeline(r.Context(), platform)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.Created(w, out)
	}
}

// SmartSlot handles GET /platforms/{platform}/slot
func (h *ContentHandler) SmartSlot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, err := entity.ParsePlatform(chi.URLParam(r, "platform"))
		if err != nil {
			response.NotFound(w, "unknown platform")
			return
		}

		slot, err := h.policy.SmartSlot(r.Context(), platform)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, slot)
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrIdeaNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, entity.ErrAccountNotConnected):
		response.Conflict(w, err.Error())
	case errors.Is(err, entity.ErrUnknownAccount):
		response.UnprocessableEntity(w, err.Error())
	case errors.Is(err, entity.ErrInvalidScheduleRequest), errors.Is(err, entity.ErrInvalidMood):
		response.BadRequest(w, err.Error())
	case errors.Is(err, entity.ErrDuplicateID):
		response.Conflict(w, err.Error())
	default:
		response.InternalError(w, "internal server error")
	}
}
