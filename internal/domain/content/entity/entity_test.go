package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to PostStatus
		want     bool
	}{
		{PostStatusDraft, PostStatusScheduled, true},
		{PostStatusScheduled, PostStatusPosted, true},
		{PostStatusDraft, PostStatusPosted, false},
		{PostStatusPosted, PostStatusScheduled, false},
		{PostStatusScheduled, PostStatusDraft, false},
		{PostStatusPosted, PostStatusPosted, false},
		{PostStatus("archived"), PostStatusPosted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParse(t *testing.T) {
	p, err := ParsePlatform("pinterest")
	require.NoError(t, err)
	assert.Equal(t, PlatformPinterest, p)

	_, err = ParsePlatform("tiktok")
	assert.ErrorIs(t, err, ErrInvalidPlatform)
	assert.ErrorIs(t, err, ErrInvalidScheduleRequest)

	_, err = ParseMood("angry")
	assert.ErrorIs(t, err, ErrInvalidMood)

	m, err := ParseMediaType("reel")
	require.NoError(t, err)
	assert.Equal(t, MediaTypeReel, m)

	_, err = ParsePostStatus("archived")
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestScheduleErrorsShareKind(t *testing.T) {
	for _, err := range []error{
		ErrUnknownAccount,
		ErrAccountNotConnected,
		ErrInvalidScheduledFor,
		ErrInvalidPlatform,
		ErrInvalidMediaType,
	} {
		assert.True(t, errors.Is(err, ErrInvalidScheduleRequest), err.Error())
	}
	assert.False(t, errors.Is(ErrIdeaNotFound, ErrInvalidScheduleRequest))
}

func TestPostIdea_DefaultPlatform(t *testing.T) {
	idea := PostIdea{Platforms: []Platform{PlatformPinterest, PlatformInstagram}}
	assert.Equal(t, PlatformPinterest, idea.DefaultPlatform())
}

func TestClone_DoesNotShareSlices(t *testing.T) {
	post := ScheduledPost{Hashtags: []string{"#a", "#b"}}
	clone := post.Clone()
	clone.Hashtags[0] = "#changed"
	assert.Equal(t, "#a", post.Hashtags[0])

	idea := PostIdea{Hashtags: []string{"#a"}, Platforms: []Platform{PlatformFacebook}}
	ideaClone := idea.Clone()
	ideaClone.Hashtags[0] = "#changed"
	ideaClone.Platforms[0] = PlatformPinterest
	assert.Equal(t, "#a", idea.Hashtags[0])
	assert.Equal(t, PlatformFacebook, idea.Platforms[0])

	tmpl := CategoryTemplate{ExampleTopics: []string{"x"}}
	tmplClone := tmpl.Clone()
	tmplClone.ExampleTopics[0] = "y"
	assert.Equal(t, "x", tmpl.ExampleTopics[0])
}

func TestScheduledPost_Validate(t *testing.T) {
	valid := ScheduledPost{
		ID:           "post-1",
		AccountID:    "acc-1",
		Platform:     PlatformInstagram,
		MediaType:    MediaTypeCarousel,
		Status:       PostStatusScheduled,
		ScheduledFor: time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, valid.Validate())

	noTime := valid
	noTime.ScheduledFor = time.Time{}
	assert.ErrorIs(t, noTime.Validate(), ErrInvalidSeed)

	badMedia := valid
	badMedia.MediaType = "gif"
	assert.ErrorIs(t, badMedia.Validate(), ErrInvalidSeed)
}

func TestAccount_Validate(t *testing.T) {
	acc := Account{ID: "acc-1", Handle: "@a", Platform: PlatformFacebook, Status: AccountStatusPending}
	require.NoError(t, acc.Validate())
	assert.False(t, acc.IsConnected())

	acc.Status = "banned"
	assert.ErrorIs(t, acc.Validate(), ErrInvalidSeed)
}
