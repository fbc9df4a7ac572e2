package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadim/neo-studio/internal/domain/content/dao"
	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

var fixedNow = time.Date(2026, 10, 19, 10, 42, 17, 0, time.UTC)

func newTestStore(t *testing.T, accounts ...entity.Account) *dao.Store {
	t.Helper()
	s := dao.NewStore()
	for _, a := range accounts {
		require.NoError(t, s.AppendAccount(a))
	}
	return s
}

func account(id string, platform entity.Platform, status entity.AccountStatus) entity.Account {
	return entity.Account{ID: id, Handle: "@" + id, Platform: platform, Status: status}
}

func newTestService(store *dao.Store) *Service {
	return New(store,
		WithClock(func() time.Time { return fixedNow }),
		WithGenerator(seededGenerator(42)),
	)
}

func TestService_GenerateIdea(t *testing.T) {
	store := newTestStore(t)
	svc := newTestService(store)

	idea, err := svc.GenerateIdea(context.Background(), GenerateInput{
		Category: "Marketing Growth",
		Topic:    "Hooks",
		Mood:     entity.MoodEducational,
	})
	require.NoError(t, err)
	assert.Contains(t, idea.ID, dao.PrefixIdea+"_")
	assert.Equal(t, fixedNow, idea.CreatedAt)

	ideas := store.Ideas()
	require.Len(t, ideas, 1)
	assert.Equal(t, idea.ID, ideas[0].ID)
}

func TestService_GenerateIdea_InvalidMood(t *testing.T) {
	store := newTestStore(t)
	svc := newTestService(store)

	_, err := svc.GenerateIdea(context.Background(), GenerateInput{Mood: "angry"})
	assert.ErrorIs(t, err, entity.ErrInvalidMood)
	assert.Empty(t, store.Ideas())
}

func TestService_SchedulePost(t *testing.T) {
	store := newTestStore(t, account("acc-ig", entity.PlatformInstagram, entity.AccountStatusConnected))
	svc := newTestService(store)

	hashtags := []string{"#a", "#b"}
	post, err := svc.SchedulePost(context.Background(), ScheduleRequest{
		AccountID:    "acc-ig",
		Platform:     entity.PlatformInstagram,
		Caption:      "hello",
		Hashtags:     hashtags,
		MediaType:    entity.MediaTypeReel,
		ScheduledFor: "2026-10-21T09:30",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PostStatusScheduled, post.Status)
	assert.Equal(t, entity.Analytics{}, post.Analytics)
	assert.Equal(t, time.Date(2026, 10, 21, 9, 30, 0, 0, time.UTC), post.ScheduledFor)

	hashtags[0] = "#mutated"
	stored := store.Posts()
	require.Len(t, stored, 1)
	assert.Equal(t, []string{"#a", "#b"}, stored[0].Hashtags)
}

func TestService_SchedulePost_Rejections(t *testing.T) {
	store := newTestStore(t,
		account("acc-ig", entity.PlatformInstagram, entity.AccountStatusConnected),
		account("acc-pending", entity.PlatformInstagram, entity.AccountStatusPending),
	)
	svc := newTestService(store)

	valid := ScheduleRequest{
		AccountID:    "acc-ig",
		Platform:     entity.PlatformInstagram,
		MediaType:    entity.MediaTypeCarousel,
		ScheduledFor: "2026-10-21T09:30:00Z",
	}

	tests := []struct {
		name   string
		mutate func(r *ScheduleRequest)
		want   error
	}{
		{"unknown account", func(r *ScheduleRequest) { r.AccountID = "nope" }, entity.ErrUnknownAccount},
		{"empty account", func(r *ScheduleRequest) { r.AccountID = "" }, entity.ErrUnknownAccount},
		{"pending account", func(r *ScheduleRequest) { r.AccountID = "acc-pending" }, entity.ErrAccountNotConnected},
		{"bad time", func(r *ScheduleRequest) { r.ScheduledFor = "tomorrow" }, entity.ErrInvalidScheduledFor},
		{"empty time", func(r *ScheduleRequest) { r.ScheduledFor = "" }, entity.ErrInvalidScheduledFor},
		{"bad platform", func(r *ScheduleRequest) { r.Platform = "myspace" }, entity.ErrInvalidPlatform},
		{"bad media", func(r *ScheduleRequest) { r.MediaType = "gif" }, entity.ErrInvalidMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			_, err := svc.SchedulePost(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, entity.ErrInvalidScheduleRequest)
		})
	}

	assert.Empty(t, store.Posts())
}

func TestService_ScheduleIdea(t *testing.T) {
	store := newTestStore(t,
		account("acc-pin", entity.PlatformPinterest, entity.AccountStatusConnected),
		account("acc-fb", entity.PlatformFacebook, entity.AccountStatusConnected),
	)
	svc := newTestService(store)

	idea, err := svc.GenerateIdea(context.Background(), GenerateInput{
		Category: "Design Inspiration",
		Topic:    "Palettes",
		Mood:     entity.MoodInspirational,
	})
	require.NoError(t, err)

	post, err := svc.ScheduleIdea(context.Background(), ScheduleIdeaInput{
		IdeaID:       idea.ID,
		AccountID:    "acc-pin",
		ScheduledFor: "2026-10-24T09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PlatformPinterest, post.Platform)
	assert.Equal(t, idea.RecommendedMedia, post.MediaType)
	assert.Equal(t, idea.Caption, post.Caption)
	assert.Equal(t, idea.Hashtags, post.Hashtags)

	override, err := svc.ScheduleIdea(context.Background(), ScheduleIdeaInput{
		IdeaID:       idea.ID,
		AccountID:    "acc-fb",
		Platform:     entity.PlatformFacebook,
		ScheduledFor: "2026-10-25T09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PlatformFacebook, override.Platform)

	// The idea is left untouched
	stored, ok := store.Idea(idea.ID)
	require.True(t, ok)
	assert.Equal(t, *idea, stored)
	assert.Len(t, store.Ideas(), 1)
}

func TestService_ScheduleIdea_NotFound(t *testing.T) {
	svc := newTestService(newTestStore(t))

	_, err := svc.ScheduleIdea(context.Background(), ScheduleIdeaInput{IdeaID: "missing"})
	assert.ErrorIs(t, err, entity.ErrIdeaNotFound)
}

func TestParseScheduledFor(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-10-21T09:30", time.Date(2026, 10, 21, 9, 30, 0, 0, time.UTC)},
		{"2026-10-21T09:30:15", time.Date(2026, 10, 21, 9, 30, 15, 0, time.UTC)},
		{" 2026-10-21T09:30:00Z ", time.Date(2026, 10, 21, 9, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseScheduledFor(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), tt.in)
	}

	withZone, err := ParseScheduledFor("2026-10-21T09:30:00+02:00")
	require.NoError(t, err)
	assert.True(t, time.Date(2026, 10, 21, 7, 30, 0, 0, time.UTC).Equal(withZone))

	_, err = ParseScheduledFor("21/10/2026")
	assert.ErrorIs(t, err, entity.ErrInvalidScheduledFor)
}
