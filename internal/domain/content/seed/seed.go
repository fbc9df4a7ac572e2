// Package seed loads the reference data a session starts with: accounts,
// category templates, engagement insights and sample posts.
package seed

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vadim/neo-studio/internal/domain/content/dao"
	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

// Source produces seed data
type Source interface {
	Name() string
	Load(ctx context.Context) (*Data, error)
}

// Data is a decoded seed set, in the order it will be appended
type Data struct {
	Accounts  []entity.Account
	Templates []entity.CategoryTemplate
	Insights  []entity.EngagementInsight
	Posts     []entity.ScheduledPost
}

// Counts reports how many entities of each collection were applied
type Counts map[dao.Collection]int

// document is the YAML layout of a seed file
type document struct {
	Accounts  []accountDoc               `yaml:"accounts"`
	Templates []entity.CategoryTemplate  `yaml:"category_templates"`
	Insights  []entity.EngagementInsight `yaml:"engagement_insights"`
	Posts     []postDoc                  `yaml:"sample_posts"`
}

type accountDoc struct {
	ID          string  `yaml:"id"`
	Platform    string  `yaml:"platform"`
	Handle      string  `yaml:"handle"`
	Status      string  `yaml:"status"`
	Followers   int     `yaml:"followers"`
	GrowthRate  float64 `yaml:"growth_rate"`
	Category    string  `yaml:"category"`
	ConnectedAt string  `yaml:"connected_at"`  // RFC3339
	ConnectedIn string  `yaml:"connected_ago"` // duration before load time
}

type postDoc struct {
	ID           string           `yaml:"id"`
	AccountID    string           `yaml:"account_id"`
	Platform     string           `yaml:"platform"`
	Category     string           `yaml:"category"`
	Topic        string           `yaml:"topic"`
	Caption      string           `yaml:"caption"`
	Hashtags     []string         `yaml:"hashtags"`
	MediaType    string           `yaml:"media_type"`
	ScheduledFor string           `yaml:"scheduled_for"` // RFC3339
	ScheduledIn  string           `yaml:"scheduled_in"`  // duration from load time, may be negative
	Status       string           `yaml:"status"`
	Analytics    entity.Analytics `yaml:"analytics"`
}

// Decode parses a YAML seed document. Relative times resolve against now.
func Decode(r io.Reader, now time.Time) (*Data, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: decoding yaml: %v", entity.ErrInvalidSeed, err)
	}

	data := &Data{
		Templates: doc.Templates,
		Insights:  doc.Insights,
	}

	for _, a := range doc.Accounts {
		connectedAt, err := resolveTime(a.ConnectedAt, a.ConnectedIn, now, true)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", a.ID, err)
		}
		data.Accounts = append(data.Accounts, entity.Account{
			ID:          a.ID,
			Platform:    entity.Platform(a.Platform),
			Handle:      a.Handle,
			Status:      entity.AccountStatus(a.Status),
			Followers:   a.Followers,
			GrowthRate:  a.GrowthRate,
			Category:    a.Category,
			ConnectedAt: connectedAt,
		})
	}

	for _, p := range doc.Posts {
		scheduledFor, err := resolveTime(p.ScheduledFor, p.ScheduledIn, now, false)
		if err != nil {
			return nil, fmt.Errorf("post %q: %w", p.ID, err)
		}
		data.Posts = append(data.Posts, entity.ScheduledPost{
			ID:           p.ID,
			AccountID:    p.AccountID,
			Platform:     entity.Platform(p.Platform),
			Category:     p.Category,
			Topic:        p.Topic,
			Caption:      p.Caption,
			Hashtags:     p.Hashtags,
			MediaType:    entity.MediaType(p.MediaType),
			ScheduledFor: scheduledFor,
			Status:       entity.PostStatus(p.Status),
			Analytics:    p.Analytics,
		})
	}

	return data, nil
}

// resolveTime reads an absolute RFC3339 value or a duration relative to now.
// With past set, the duration counts backwards.
func resolveTime(absolute, relative string, now time.Time, past bool) (time.Time, error) {
	if absolute != "" {
		t, err := time.Parse(time.RFC3339, absolute)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", entity.ErrInvalidSeed, err)
		}
		return t, nil
	}
	if relative != "" {
		d, err := time.ParseDuration(relative)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", entity.ErrInvalidSeed, err)
		}
		if past {
			d = -d
		}
		return now.Add(d).Truncate(time.Minute), nil
	}
	return time.Time{}, nil
}

// Validate checks the whole seed set before anything is written
func (d *Data) Validate() error {
	accounts := make(map[string]struct{}, len(d.Accounts))
	for i := range d.Accounts {
		if err := d.Accounts[i].Validate(); err != nil {
			return fmt.Errorf("account %q: %w", d.Accounts[i].ID, err)
		}
		accounts[d.Accounts[i].ID] = struct{}{}
	}
	for _, t := range d.Templates {
		if t.ID == "" || t.Title == "" {
			return fmt.Errorf("category template %q: %w", t.ID, entity.ErrInvalidSeed)
		}
	}
	for i := range d.Insights {
		if err := d.Insights[i].Validate(); err != nil {
			return fmt.Errorf("insight %q: %w", d.Insights[i].ID, err)
		}
	}
	for i := range d.Posts {
		if err := d.Posts[i].Validate(); err != nil {
			return fmt.Errorf("post %q: %w", d.Posts[i].ID, err)
		}
		if _, ok := accounts[d.Posts[i].AccountID]; !ok {
			return fmt.Errorf("post %q references unknown account %q: %w",
				d.Posts[i].ID, d.Posts[i].AccountID, entity.ErrInvalidSeed)
		}
	}
	return nil
}

// Apply validates d and appends it to the store
func Apply(d *Data, w dao.SeedWriter) (Counts, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	for _, a := range d.Accounts {
		if err := w.AppendAccount(a); err != nil {
			return nil, err
		}
	}
	for _, t := range d.Templates {
		if err := w.AppendTemplate(t); err != nil {
			return nil, err
		}
	}
	for _, i := range d.Insights {
		if err := w.AppendInsight(i); err != nil {
			return nil, err
		}
	}
	for _, p := range d.Posts {
		if err := w.AppendPost(p); err != nil {
			return nil, err
		}
	}

	return Counts{
		dao.CollectionAccounts:  len(d.Accounts),
		dao.CollectionTemplates: len(d.Templates),
		dao.CollectionInsights:  len(d.Insights),
		dao.CollectionPosts:     len(d.Posts),
	}, nil
}
