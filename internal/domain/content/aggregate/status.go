package aggregate

import (
	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

// UpcomingPosts drops drafts and orders the rest by ascending send time.
// Despite the name, past-dated posts are kept: the result is the full
// non-draft queue, not only future sends.
func UpcomingPosts(posts []entity.ScheduledPost) []entity.ScheduledPost {
	filtered := make([]entity.ScheduledPost, 0, len(posts))
	for _, p := range posts {
		if p.Status != entity.PostStatusDraft {
			filtered = append(filtered, p)
		}
	}
	return SortByScheduledFor(filtered)
}

// StatusCount is the number of posts in one status
type StatusCount struct {
	Status entity.PostStatus `json:"status"`
	Count  int               `json:"count"`
}

// StatusSummary counts posts per status in order of first appearance.
// Statuses with no posts are omitted.
func StatusSummary(posts []entity.ScheduledPost) []StatusCount {
	index := make(map[entity.PostStatus]int)
	var out []StatusCount
	for _, p := range posts {
		i, ok := index[p.Status]
		if !ok {
			i = len(out)
			index[p.Status] = i
			out = append(out, StatusCount{Status: p.Status})
		}
		out[i].Count++
	}
	if out == nil {
		out = []StatusCount{}
	}
	return out
}

// Overview holds the dashboard headline counts
type Overview struct {
	Scheduled         int `json:"scheduled"`
	Posted            int `json:"posted"`
	Drafts            int `json:"drafts"`
	Accounts          int `json:"accounts"`
	ConnectedAccounts int `json:"connected_accounts"`
	Ideas             int `json:"ideas"`
}

// BuildOverview computes the dashboard stat cards
func BuildOverview(posts []entity.ScheduledPost, accounts []entity.Account, ideas int) Overview {
	o := Overview{Accounts: len(accounts), Ideas: ideas}
	for _, p := range posts {
		switch p.Status {
		case entity.PostStatusScheduled:
			o.Scheduled++
		case entity.PostStatusPosted:
			o.Posted++
		case entity.PostStatusDraft:
			o.Drafts++
		}
	}
	for i := range accounts {
		if accounts[i].IsConnected() {
			o.ConnectedAccounts++
		}
	}
	return o
}
