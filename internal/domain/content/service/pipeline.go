package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vadim/neo-studio/internal/domain/content/dao"
	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

// PipelineResult holds what an auto-populate run created
type PipelineResult struct {
	Ideas []entity.PostIdea
	Posts []entity.ScheduledPost
}

// pipelineSeed is one category/topic pair the pipeline generates for
type pipelineSeed struct {
	category string
	topic    string
}

// AutoPopulatePipeline generates one idea per representative category and
// schedules each on the given platform.
//
// Slot rule: slot 0 is now rounded down to the local hour plus the lead (a day by
// default); slot i is slot 0 plus i spacings (a day by default). This yields
// one post per day at the same hour with strictly increasing send times.
// Moods rotate inspirational, educational, promotional.
//
// The target account is the first connected account on the platform, or the
// first connected account of any platform. Without a connected account the
// run is a no-op and returns an empty result.
func (s *Service) AutoPopulatePipeline(ctx context.Context, platform entity.Platform) (*PipelineResult, error) {
	if !platform.IsValid() {
		return nil, entity.ErrInvalidPlatform
	}

	acc, ok := s.pipelineAccount(platform)
	if !ok {
		return &PipelineResult{}, nil
	}

	seeds := s.pipelineSeeds()
	now := s.now()
	first := startOfHour(now).Add(s.lead)

	result := &PipelineResult{
		Ideas: make([]entity.PostIdea, 0, len(seeds)),
		Posts: make([]entity.ScheduledPost, 0, len(seeds)),
	}

	for i, seed := range seeds {
		mood := entity.Moods[i%len(entity.Moods)]

		idea := s.gen.Generate(seed.category, seed.topic, mood, now)
		idea.ID = s.repo.NewID(dao.PrefixIdea)

		hashtags := make([]string, len(idea.Hashtags))
		copy(hashtags, idea.Hashtags)

		post := entity.ScheduledPost{
			ID:           s.repo.NewID(dao.PrefixPost),
			AccountID:    acc.ID,
			Platform:     platform,
			Category:     idea.Category,
			Topic:        idea.Topic,
			Caption:      idea.Caption,
			Hashtags:     hashtags,
			MediaType:    idea.RecommendedMedia,
			ScheduledFor: first.Add(time.Duration(i) * s.spacing),
			Status:       entity.PostStatusScheduled,
		}

		result.Ideas = append(result.Ideas, idea)
		result.Posts = append(result.Posts, post)
	}

	if err := s.repo.AppendBatch(result.Ideas, result.Posts); err != nil {
		return nil, fmt.Errorf("appending pipeline batch: %w", err)
	}

	return result, nil
}

// pipelineAccount picks the posting target for an auto-populate run
func (s *Service) pipelineAccount(platform entity.Platform) (entity.Account, bool) {
	var fallback *entity.Account
	accounts := s.repo.Accounts()
	for i := range accounts {
		if !accounts[i].IsConnected() {
			continue
		}
		if accounts[i].Platform == platform {
			return accounts[i], true
		}
		if fallback == nil {
			fallback = &accounts[i]
		}
	}
	if fallback == nil {
		return entity.Account{}, false
	}
	return *fallback, true
}

// pipelineSeeds returns the categories to generate for, in store order
func (s *Service) pipelineSeeds() []pipelineSeed {
	templates := s.repo.CategoryTemplates()
	if len(templates) == 0 {
		seeds := make([]pipelineSeed, len(DefaultCategories))
		for i, c := range DefaultCategories {
			seeds[i] = pipelineSeed{category: c, topic: c}
		}
		return seeds
	}

	seeds := make([]pipelineSeed, len(templates))
	for i, t := range templates {
		topic := t.Title
		if len(t.ExampleTopics) > 0 {
			topic = t.ExampleTopics[0]
		}
		seeds[i] = pipelineSeed{category: t.Title, topic: topic}
	}
	return seeds
}

// startOfHour rounds t down to the hour on its own wall clock, so zones with
// a half-hour offset still get slots on the hour.
func startOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
