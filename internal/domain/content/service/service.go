package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vadim/neo-studio/internal/domain/content/dao"
	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

// Repository is the subset of the entity store the service writes through
type Repository interface {
	dao.AccountReader
	dao.TemplateReader
	dao.IdeaRepository
	dao.PostRepository
}

// Default auto-populate spacing: first slot a day ahead, then one per day
const (
	DefaultPipelineLead    = 24 * time.Hour
	DefaultPipelineSpacing = 24 * time.Hour
)

// Service handles idea generation and scheduling
type Service struct {
	repo    Repository
	gen     *Generator
	now     func() time.Time
	lead    time.Duration
	spacing time.Duration
}

// Option configures a Service
type Option func(*Service)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithGenerator overrides the idea generator
func WithGenerator(gen *Generator) Option {
	return func(s *Service) {
		s.gen = gen
	}
}

// WithPipelineSpacing sets the auto-populate slot policy. Non-positive
// values keep the defaults.
func WithPipelineSpacing(lead, spacing time.Duration) Option {
	return func(s *Service) {
		if lead > 0 {
			s.lead = lead
		}
		if spacing > 0 {
			s.spacing = spacing
		}
	}
}

// New creates a new content service
func New(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		now:     time.Now,
		lead:    DefaultPipelineLead,
		spacing: DefaultPipelineSpacing,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gen == nil {
		s.gen = NewGenerator()
	}
	return s
}

// GenerateInput represents input for generating an idea
type GenerateInput struct {
	Category string
	Topic    string
	Mood     entity.Mood
}

// GenerateIdea builds a new idea, assigns its id and appends it to the store
func (s *Service) GenerateIdea(ctx context.Context, in GenerateInput) (*entity.PostIdea, error) {
	if !in.Mood.IsValid() {
		return nil, entity.ErrInvalidMood
	}

	idea := s.gen.Generate(in.Category, in.Topic, in.Mood, s.now())
	idea.ID = s.repo.NewID(dao.PrefixIdea)

	if err := s.repo.AppendIdea(idea); err != nil {
		return nil, fmt.Errorf("appending idea: %w", err)
	}

	return &idea, nil
}

// ScheduleRequest represents input for scheduling a post
type ScheduleRequest struct {
	AccountID    string
	Platform     entity.Platform
	Category     string
	Topic        string
	Caption      string
	Hashtags     []string
	MediaType    entity.MediaType
	ScheduledFor string // RFC3339 or datetime-local
}

// SchedulePost creates a post in status scheduled with zeroed analytics
func (s *Service) SchedulePost(ctx context.Context, req ScheduleRequest) (*entity.ScheduledPost, error) {
	post, err := s.buildPost(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AppendPost(*post); err != nil {
		return nil, fmt.Errorf("appending post: %w", err)
	}

	return post, nil
}

// ScheduleIdeaInput represents input for scheduling an existing idea
type ScheduleIdeaInput struct {
	IdeaID       string
	AccountID    string
	Platform     entity.Platform // empty means the idea's default platform
	ScheduledFor string
}

// ScheduleIdea schedules a stored idea. The idea itself is left untouched;
// the post gets its own copy of the hashtags.
func (s *Service) ScheduleIdea(ctx context.Context, in ScheduleIdeaInput) (*entity.ScheduledPost, error) {
	idea, ok := s.repo.Idea(in.IdeaID)
	if !ok {
		return nil, entity.ErrIdeaNotFound
	}

	platform := in.Platform
	if platform == "" {
		platform = idea.DefaultPlatform()
	}

	return s.SchedulePost(ctx, ScheduleRequest{
		AccountID:    in.AccountID,
		Platform:     platform,
		Category:     idea.Category,
		Topic:        idea.Topic,
		Caption:      idea.Caption,
		Hashtags:     idea.Hashtags,
		MediaType:    idea.RecommendedMedia,
		ScheduledFor: in.ScheduledFor,
	})
}

// buildPost validates a request and constructs the post without storing it
func (s *Service) buildPost(req ScheduleRequest) (*entity.ScheduledPost, error) {
	if !req.Platform.IsValid() {
		return nil, entity.ErrInvalidPlatform
	}
	if !req.MediaType.IsValid() {
		return nil, entity.ErrInvalidMediaType
	}

	acc, ok := s.repo.Account(req.AccountID)
	if !ok {
		return nil, entity.ErrUnknownAccount
	}
	if !acc.IsConnected() {
		return nil, entity.ErrAccountNotConnected
	}

	scheduledFor, err := ParseScheduledFor(req.ScheduledFor)
	if err != nil {
		return nil, err
	}

	hashtags := make([]string, len(req.Hashtags))
	copy(hashtags, req.Hashtags)

	return &entity.ScheduledPost{
		ID:           s.repo.NewID(dao.PrefixPost),
		AccountID:    acc.ID,
		Platform:     req.Platform,
		Category:     req.Category,
		Topic:        req.Topic,
		Caption:      req.Caption,
		Hashtags:     hashtags,
		MediaType:    req.MediaType,
		ScheduledFor: scheduledFor,
		Status:       entity.PostStatusScheduled,
	}, nil
}

// scheduleLayouts are tried in order. Layouts without a zone parse as UTC.
var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseScheduledFor parses a send time
func ParseScheduledFor(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", entity.ErrInvalidScheduledFor, s)
}
