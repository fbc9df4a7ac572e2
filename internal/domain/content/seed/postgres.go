package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

// Querier is the part of pgxpool.Pool the source needs
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads seed data from reference tables. Every table carries
// a position column that fixes insertion order:
//
//	accounts(position, id, platform, handle, status, followers, growth_rate, category, connected_at)
//	category_templates(position, id, title, example_topics text[])
//	engagement_insights(position, id, platform, metric, direction, change, recommendation)
//	sample_posts(position, id, account_id, platform, category, topic, caption, hashtags text[],
//	             media_type, scheduled_for, status, likes, comments, shares, saves)
type PostgresSource struct {
	db Querier
}

// NewPostgresSource creates a postgres seed source
func NewPostgresSource(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

// Name returns the source name
func (s *PostgresSource) Name() string { return "postgres" }

// Load reads all seed tables
func (s *PostgresSource) Load(ctx context.Context) (*Data, error) {
	var (
		data Data
		err  error
	)

	if data.Accounts, err = s.accounts(ctx); err != nil {
		return nil, err
	}
	if data.Templates, err = s.templates(ctx); err != nil {
		return nil, err
	}
	if data.Insights, err = s.insights(ctx); err != nil {
		return nil, err
	}
	if data.Posts, err = s.posts(ctx); err != nil {
		return nil, err
	}

	return &data, nil
}

func (s *PostgresSource) accounts(ctx context.Context) ([]entity.Account, error) {
	query := `
		SELECT id, platform, handle, status, followers, growth_rate, category, connected_at
		FROM accounts
		ORDER BY position, id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var accounts []entity.Account
	for rows.Next() {
		var acc entity.Account
		var category *string
		err := rows.Scan(
			&acc.ID,
			&acc.Platform,
			&acc.Handle,
			&acc.Status,
			&acc.Followers,
			&acc.GrowthRate,
			&category,
			&acc.ConnectedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		if category != nil {
			acc.Category = *category
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}

	return accounts, nil
}

func (s *PostgresSource) templates(ctx context.Context) ([]entity.CategoryTemplate, error) {
	query := `
		SELECT id, title, example_topics
		FROM category_templates
		ORDER BY position, id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying category templates: %w", err)
	}
	defer rows.Close()

	var templates []entity.CategoryTemplate
	for rows.Next() {
		var t entity.CategoryTemplate
		if err := rows.Scan(&t.ID, &t.Title, &t.ExampleTopics); err != nil {
			return nil, fmt.Errorf("scanning category template: %w", err)
		}
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category templates: %w", err)
	}

	return templates, nil
}

func (s *PostgresSource) insights(ctx context.Context) ([]entity.EngagementInsight, error) {
	query := `
		SELECT id, platform, metric, direction, change, recommendation
		FROM engagement_insights
		ORDER BY position, id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying engagement insights: %w", err)
	}
	defer rows.Close()

	var insights []entity.EngagementInsight
	for rows.Next() {
		var ins entity.EngagementInsight
		err := rows.Scan(
			&ins.ID,
			&ins.Platform,
			&ins.Metric,
			&ins.Direction,
			&ins.Change,
			&ins.Recommendation,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning engagement insight: %w", err)
		}
		insights = append(insights, ins)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating engagement insights: %w", err)
	}

	return insights, nil
}

func (s *PostgresSource) posts(ctx context.Context) ([]entity.ScheduledPost, error) {
	query := `
		SELECT id, account_id, platform, category, topic, caption, hashtags,
		       media_type, scheduled_for, status, likes, comments, shares, saves
		FROM sample_posts
		ORDER BY position, id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying sample posts: %w", err)
	}
	defer rows.Close()

	var posts []entity.ScheduledPost
	for rows.Next() {
		var p entity.ScheduledPost
		var scheduledFor time.Time
		err := rows.Scan(
			&p.ID,
			&p.AccountID,
			&p.Platform,
			&p.Category,
			&p.Topic,
			&p.Caption,
			&p.Hashtags,
			&p.MediaType,
			&scheduledFor,
			&p.Status,
			&p.Analytics.Likes,
			&p.Analytics.Comments,
			&p.Analytics.Shares,
			&p.Analytics.Saves,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning sample post: %w", err)
		}
		p.ScheduledFor = scheduledFor
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sample posts: %w", err)
	}

	return posts, nil
}
