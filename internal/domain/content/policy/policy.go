package policy

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vadim/neo-studio/internal/domain/content/aggregate"
	"github.com/vadim/neo-studio/internal/domain/content/entity"
	"github.com/vadim/neo-studio/internal/domain/content/service"
	"github.com/vadim/neo-studio/internal/metrics"
)

// Snapshotter gives read access to the session's collections
type Snapshotter interface {
	Accounts() []entity.Account
	CategoryTemplates() []entity.CategoryTemplate
	Ideas() []entity.PostIdea
	Posts() []entity.ScheduledPost
	Insights() []entity.EngagementInsight
}

// ContentService defines the write operations the policy orchestrates
type ContentService interface {
	GenerateIdea(ctx context.Context, in service.GenerateInput) (*entity.PostIdea, error)
	SchedulePost(ctx context.Context, req service.ScheduleRequest) (*entity.ScheduledPost, error)
	ScheduleIdea(ctx context.Context, in service.ScheduleIdeaInput) (*entity.ScheduledPost, error)
	AutoPopulatePipeline(ctx context.Context, platform entity.Platform) (*service.PipelineResult, error)
}

// Policy is the session aggregate: it owns one store for the process
// lifetime and exposes reads, writes and derived views over it. Derived
// views are recomputed from a fresh snapshot on every call.
type Policy struct {
	store  Snapshotter
	svc    ContentService
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Policy
type Option func(*Policy)

// WithClock overrides the time source used for relative labels and the week calendar
func WithClock(now func() time.Time) Option {
	return func(p *Policy) {
		p.now = now
	}
}

// New creates a new content policy
func New(store Snapshotter, svc ContentService, logger *slog.Logger, opts ...Option) *Policy {
	p := &Policy{
		store:  store,
		svc:    svc,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Accounts returns all accounts
func (p *Policy) Accounts(ctx context.Context) []entity.Account {
	return p.store.Accounts()
}

// ConnectedAccounts returns the accounts that can be selected as posting targets
func (p *Policy) ConnectedAccounts(ctx context.Context) []entity.Account {
	all := p.store.Accounts()
	out := make([]entity.Account, 0, len(all))
	for i := range all {
		if all[i].IsConnected() {
			out = append(out, all[i])
		}
	}
	return out
}

// CategoryTemplates returns all category templates
func (p *Policy) CategoryTemplates(ctx context.Context) []entity.CategoryTemplate {
	return p.store.CategoryTemplates()
}

// Ideas returns all generated ideas, oldest first
func (p *Policy) Ideas(ctx context.Context) []entity.PostIdea {
	return p.store.Ideas()
}

// Posts returns all scheduled posts, oldest first
func (p *Policy) Posts(ctx context.Context) []entity.ScheduledPost {
	return p.store.Posts()
}

// Insights returns all engagement insights
func (p *Policy) Insights(ctx context.Context) []entity.EngagementInsight {
	return p.store.Insights()
}

// GenerateIdeaInput represents input for generating an idea
type GenerateIdeaInput struct {
	Category string
	Topic    string
	Mood     entity.Mood
}

// GenerateIdea generates and stores a new idea
func (p *Policy) GenerateIdea(ctx context.Context, in GenerateIdeaInput) (*entity.PostIdea, error) {
	idea, err := p.svc.GenerateIdea(ctx, service.GenerateInput{
		Category: in.Category,
		Topic:    in.Topic,
		Mood:     in.Mood,
	})
	if err != nil {
		return nil, err
	}

	metrics.IdeasGenerated.WithLabelValues(string(idea.Mood), "manual").Inc()
	p.logger.Info("idea generated",
		"idea_id", idea.ID,
		"category", idea.Category,
		"mood", idea.Mood,
		"media", idea.RecommendedMedia,
	)

	return idea, nil
}

// SchedulePostInput represents input for scheduling a post
type SchedulePostInput struct {
	AccountID    string
	Platform     entity.Platform
	Category     string
	Topic        string
	Caption      string
	Hashtags     []string
	MediaType    entity.MediaType
	ScheduledFor string
}

// SchedulePost schedules a post for a connected account
func (p *Policy) SchedulePost(ctx context.Context, in SchedulePostInput) (*entity.ScheduledPost, error) {
	post, err := p.svc.SchedulePost(ctx, service.ScheduleRequest{
		AccountID:    in.AccountID,
		Platform:     in.Platform,
		Category:     in.Category,
		Topic:        in.Topic,
		Caption:      in.Caption,
		Hashtags:     in.Hashtags,
		MediaType:    in.MediaType,
		ScheduledFor: in.ScheduledFor,
	})
	if err != nil {
		p.rejected(err, in.AccountID)
		return nil, err
	}

	p.scheduled(post, "manual")
	return post, nil
}

// ScheduleIdeaInput represents input for scheduling a stored idea
type ScheduleIdeaInput struct {
	IdeaID       string
	AccountID    string
	Platform     entity.Platform
	ScheduledFor string
}

// ScheduleIdea schedules a stored idea on an account
func (p *Policy) ScheduleIdea(ctx context.Context, in ScheduleIdeaInput) (*entity.ScheduledPost, error) {
	post, err := p.svc.ScheduleIdea(ctx, service.ScheduleIdeaInput{
		IdeaID:       in.IdeaID,
		AccountID:    in.AccountID,
		Platform:     in.Platform,
		ScheduledFor: in.ScheduledFor,
	})
	if err != nil {
		p.rejected(err, in.AccountID)
		return nil, err
	}

	p.scheduled(post, "idea")
	return post, nil
}

// PipelineOutput represents output from an auto-populate run
type PipelineOutput struct {
	Ideas []entity.PostIdea      `json:"ideas"`
	Posts []entity.ScheduledPost `json:"posts"`
}

// AutoPopulatePipeline bulk-creates ideas and posts for a platform
func (p *Policy) AutoPopulatePipeline(ctx context.Context, platform entity.Platform) (*PipelineOutput, error) {
	res, err := p.svc.AutoPopulatePipeline(ctx, platform)
	if err != nil {
		return nil, err
	}

	if len(res.Posts) == 0 {
		p.logger.Warn("auto-populate skipped, no connected account", "platform", platform)
	}
	for i := range res.Ideas {
		metrics.IdeasGenerated.WithLabelValues(string(res.Ideas[i].Mood), "pipeline").Inc()
	}
	for i := range res.Posts {
		metrics.PostsScheduled.WithLabelValues(string(res.Posts[i].Platform), "pipeline").Inc()
	}
	p.logger.Info("pipeline populated", "platform", platform, "posts", len(res.Posts))

	out := &PipelineOutput{Ideas: res.Ideas, Posts: res.Posts}
	if out.Ideas == nil {
		out.Ideas = []entity.PostIdea{}
	}
	if out.Posts == nil {
		out.Posts = []entity.ScheduledPost{}
	}
	return out, nil
}

// Trend returns the engagement trend and hot posts
func (p *Policy) Trend(ctx context.Context) aggregate.Trend {
	defer p.observe("trend")()
	return aggregate.BuildTrend(p.store.Posts(), p.now())
}

// PlatformSummary returns per-platform interaction rollups
func (p *Policy) PlatformSummary(ctx context.Context) []aggregate.PlatformSummary {
	defer p.observe("platforms")()
	return aggregate.SummariseByPlatform(p.store.Posts())
}

// Calendar returns posts bucketed by calendar day
func (p *Policy) Calendar(ctx context.Context) *aggregate.DayBuckets {
	defer p.observe("calendar")()
	return aggregate.GroupPostsByDay(p.store.Posts())
}

// WeekCalendar returns the week containing reference; a zero reference means today
func (p *Policy) WeekCalendar(ctx context.Context, reference time.Time) []aggregate.CalendarDay {
	defer p.observe("week")()
	if reference.IsZero() {
		reference = p.now()
	}
	return aggregate.WeekCalendar(p.store.Posts(), reference)
}

// Upcoming returns the non-draft queue by send time; limit <= 0 means all
func (p *Policy) Upcoming(ctx context.Context, limit int) []entity.ScheduledPost {
	defer p.observe("upcoming")()
	posts := aggregate.UpcomingPosts(p.store.Posts())
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts
}

// StatusSummary returns post counts per present status
func (p *Policy) StatusSummary(ctx context.Context) []aggregate.StatusCount {
	defer p.observe("status")()
	return aggregate.StatusSummary(p.store.Posts())
}

// Overview returns the dashboard headline counts
func (p *Policy) Overview(ctx context.Context) aggregate.Overview {
	defer p.observe("overview")()
	return aggregate.BuildOverview(p.store.Posts(), p.store.Accounts(), len(p.store.Ideas()))
}

// SmartSlot returns the best posting window for a platform
func (p *Policy) SmartSlot(ctx context.Context, platform entity.Platform) (aggregate.SmartSlot, error) {
	slot, ok := aggregate.SlotFor(platform)
	if !ok {
		return aggregate.SmartSlot{}, entity.ErrInvalidPlatform
	}
	return slot, nil
}

func (p *Policy) scheduled(post *entity.ScheduledPost, source string) {
	metrics.PostsScheduled.WithLabelValues(string(post.Platform), source).Inc()
	p.logger.Info("post scheduled",
		"post_id", post.ID,
		"account_id", post.AccountID,
		"platform", post.Platform,
		"scheduled_for", post.ScheduledFor,
	)
}

func (p *Policy) rejected(err error, accountID string) {
	metrics.ScheduleRejections.WithLabelValues(rejectionReason(err)).Inc()
	p.logger.Warn("schedule rejected", "account_id", accountID, "error", err)
}

func (p *Policy) observe(view string) func() {
	start := time.Now()
	return func() {
		metrics.ViewDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, entity.ErrUnknownAccount):
		return "unknown_account"
	case errors.Is(err, entity.ErrAccountNotConnected):
		return "account_not_connected"
	case errors.Is(err, entity.ErrInvalidScheduledFor):
		return "invalid_scheduled_for"
	case errors.Is(err, entity.ErrInvalidPlatform):
		return "invalid_platform"
	case errors.Is(err, entity.ErrInvalidMediaType):
		return "invalid_media_type"
	case errors.Is(err, entity.ErrIdeaNotFound):
		return "idea_not_found"
	default:
		return "internal"
	}
}
