package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

func TestAutoPopulatePipeline_DefaultCategories(t *testing.T) {
	store := newTestStore(t,
		account("acc-fb", entity.PlatformFacebook, entity.AccountStatusConnected),
		account("acc-ig", entity.PlatformInstagram, entity.AccountStatusConnected),
	)
	svc := newTestService(store)

	res, err := svc.AutoPopulatePipeline(context.Background(), entity.PlatformInstagram)
	require.NoError(t, err)

	n := len(DefaultCategories)
	require.Len(t, res.Ideas, n)
	require.Len(t, res.Posts, n)
	assert.Len(t, store.Ideas(), n)
	assert.Len(t, store.Posts(), n)

	first := fixedNow.Truncate(time.Hour).Add(DefaultPipelineLead)
	for i, post := range res.Posts {
		assert.Equal(t, entity.PlatformInstagram, post.Platform)
		assert.Equal(t, "acc-ig", post.AccountID)
		assert.Equal(t, entity.PostStatusScheduled, post.Status)
		assert.Equal(t, first.Add(time.Duration(i)*DefaultPipelineSpacing), post.ScheduledFor)
		if i > 0 {
			assert.True(t, post.ScheduledFor.After(res.Posts[i-1].ScheduledFor))
		}

		idea := res.Ideas[i]
		assert.Equal(t, DefaultCategories[i], idea.Category)
		assert.Equal(t, entity.Moods[i%len(entity.Moods)], idea.Mood)
		assert.Equal(t, idea.Caption, post.Caption)
		assert.Equal(t, idea.RecommendedMedia, post.MediaType)
	}
}

func TestAutoPopulatePipeline_UsesTemplates(t *testing.T) {
	store := newTestStore(t, account("acc-pin", entity.PlatformPinterest, entity.AccountStatusConnected))
	require.NoError(t, store.AppendTemplate(entity.CategoryTemplate{
		ID: "tpl-1", Title: "Design Inspiration", ExampleTopics: []string{"Seasonal moodboard", "Palettes"},
	}))
	require.NoError(t, store.AppendTemplate(entity.CategoryTemplate{ID: "tpl-2", Title: "Podcasting"}))
	svc := newTestService(store)

	res, err := svc.AutoPopulatePipeline(context.Background(), entity.PlatformPinterest)
	require.NoError(t, err)
	require.Len(t, res.Ideas, 2)

	assert.Equal(t, "Seasonal moodboard", res.Ideas[0].Topic)
	assert.Equal(t, "Podcasting", res.Ideas[1].Topic)
}

func TestAutoPopulatePipeline_FallsBackToAnyConnectedAccount(t *testing.T) {
	store := newTestStore(t,
		account("acc-pin-pending", entity.PlatformPinterest, entity.AccountStatusPending),
		account("acc-fb", entity.PlatformFacebook, entity.AccountStatusConnected),
	)
	svc := newTestService(store)

	res, err := svc.AutoPopulatePipeline(context.Background(), entity.PlatformPinterest)
	require.NoError(t, err)
	require.NotEmpty(t, res.Posts)
	for _, post := range res.Posts {
		assert.Equal(t, "acc-fb", post.AccountID)
		assert.Equal(t, entity.PlatformPinterest, post.Platform)
	}
}

func TestAutoPopulatePipeline_NoConnectedAccount(t *testing.T) {
	store := newTestStore(t, account("acc-ig", entity.PlatformInstagram, entity.AccountStatusDisconnected))
	svc := newTestService(store)

	res, err := svc.AutoPopulatePipeline(context.Background(), entity.PlatformInstagram)
	require.NoError(t, err)
	assert.Empty(t, res.Ideas)
	assert.Empty(t, res.Posts)
	assert.Empty(t, store.Ideas())
	assert.Empty(t, store.Posts())
}

func TestAutoPopulatePipeline_InvalidPlatform(t *testing.T) {
	svc := newTestService(newTestStore(t))

	_, err := svc.AutoPopulatePipeline(context.Background(), "myspace")
	assert.ErrorIs(t, err, entity.ErrInvalidPlatform)
}

func TestAutoPopulatePipeline_HalfHourZoneLandsOnTheHour(t *testing.T) {
	india := time.FixedZone("IST", 5*60*60+30*60)
	localNow := time.Date(2026, 10, 19, 16, 12, 0, 0, india)

	store := newTestStore(t, account("acc-ig", entity.PlatformInstagram, entity.AccountStatusConnected))
	svc := New(store, WithClock(func() time.Time { return localNow }))

	res, err := svc.AutoPopulatePipeline(context.Background(), entity.PlatformInstagram)
	require.NoError(t, err)
	require.NotEmpty(t, res.Posts)

	for _, post := range res.Posts {
		local := post.ScheduledFor.In(india)
		assert.Equal(t, 16, local.Hour())
		assert.Equal(t, 0, local.Minute())
	}
	assert.True(t, time.Date(2026, 10, 20, 16, 0, 0, 0, india).Equal(res.Posts[0].ScheduledFor))
}

func TestAutoPopulatePipeline_CustomSpacing(t *testing.T) {
	store := newTestStore(t, account("acc-ig", entity.PlatformInstagram, entity.AccountStatusConnected))
	svc := New(store,
		WithClock(func() time.Time { return fixedNow }),
		WithPipelineSpacing(2*time.Hour, 6*time.Hour),
	)

	res, err := svc.AutoPopulatePipeline(context.Background(), entity.PlatformInstagram)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Posts), 2)

	assert.Equal(t, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC), res.Posts[0].ScheduledFor)
	assert.Equal(t, 6*time.Hour, res.Posts[1].ScheduledFor.Sub(res.Posts[0].ScheduledFor))
}
