package dao

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

func testPost(id string) entity.ScheduledPost {
	return entity.ScheduledPost{
		ID:           id,
		AccountID:    "acc-1",
		Platform:     entity.PlatformInstagram,
		Hashtags:     []string{"#one", "#two"},
		MediaType:    entity.MediaTypeCarousel,
		ScheduledFor: time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
		Status:       entity.PostStatusScheduled,
	}
}

func TestStore_NewID(t *testing.T) {
	s := NewStore()

	const n = 200
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.NewID(PrefixPost)
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		assert.True(t, strings.HasPrefix(id, "post_"), id)
		_, dup := seen[id]
		require.False(t, dup, "id issued twice: %s", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestStore_AppendPost_DuplicateID(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.AppendPost(testPost("post-1")))
	err := s.AppendPost(testPost("post-1"))
	assert.ErrorIs(t, err, entity.ErrDuplicateID)
	assert.Len(t, s.Posts(), 1)
}

func TestStore_IDsAreScopedPerCollection(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.AppendPost(testPost("shared")))
	require.NoError(t, s.AppendIdea(entity.PostIdea{ID: "shared"}))
}

func TestStore_PreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, s.AppendPost(testPost(id)))
	}

	posts := s.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, "c", posts[0].ID)
	assert.Equal(t, "a", posts[1].ID)
	assert.Equal(t, "b", posts[2].ID)
}

func TestStore_AppendBatch_Atomic(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AppendPost(testPost("post-taken")))

	ideas := []entity.PostIdea{{ID: "idea-1"}, {ID: "idea-2"}}
	posts := []entity.ScheduledPost{testPost("post-new"), testPost("post-taken")}

	err := s.AppendBatch(ideas, posts)
	require.ErrorIs(t, err, entity.ErrDuplicateID)
	assert.Empty(t, s.Ideas())
	assert.Len(t, s.Posts(), 1)

	// Collisions inside the batch are rejected too
	err = s.AppendBatch([]entity.PostIdea{{ID: "idea-x"}, {ID: "idea-x"}}, nil)
	require.ErrorIs(t, err, entity.ErrDuplicateID)
	assert.Empty(t, s.Ideas())

	require.NoError(t, s.AppendBatch(ideas, []entity.ScheduledPost{testPost("post-new")}))
	assert.Len(t, s.Ideas(), 2)
	assert.Len(t, s.Posts(), 2)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s := NewStore()
	post := testPost("post-1")
	require.NoError(t, s.AppendPost(post))

	// Mutating the caller's value after append does not leak in
	post.Hashtags[0] = "#mutated"

	snap := s.Posts()
	assert.Equal(t, "#one", snap[0].Hashtags[0])

	// Mutating a snapshot does not leak back
	snap[0].Hashtags[1] = "#mutated"
	snap[0].Caption = "changed"
	again := s.Posts()
	assert.Equal(t, "#two", again[0].Hashtags[1])
	assert.Empty(t, again[0].Caption)

	// Later appends do not show up in an earlier snapshot
	require.NoError(t, s.AppendPost(testPost("post-2")))
	assert.Len(t, snap, 1)
}

func TestStore_Lookups(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AppendAccount(entity.Account{ID: "acc-1", Handle: "@a", Platform: entity.PlatformInstagram}))
	require.NoError(t, s.AppendIdea(entity.PostIdea{ID: "idea-1", Hashtags: []string{"#x"}}))

	acc, ok := s.Account("acc-1")
	require.True(t, ok)
	assert.Equal(t, "@a", acc.Handle)

	_, ok = s.Account("missing")
	assert.False(t, ok)

	idea, ok := s.Idea("idea-1")
	require.True(t, ok)
	idea.Hashtags[0] = "#changed"

	stored, _ := s.Idea("idea-1")
	assert.Equal(t, "#x", stored.Hashtags[0])
}

func TestStore_NewIDSkipsClaimedIDs(t *testing.T) {
	s := NewStore()
	id := s.NewID(PrefixIdea)
	require.NoError(t, s.AppendIdea(entity.PostIdea{ID: id}))

	assert.NotEqual(t, id, s.NewID(PrefixIdea))
}
