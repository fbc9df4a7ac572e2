package aggregate

import (
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

const (
	// TrendWindow is how many of the earliest posts feed the trend series
	TrendWindow = 7
	// HotPostsLimit is how many posts the hot list holds
	HotPostsLimit = 3
)

// Placeholder series shown when there are no posts at all. This is
// intentional: the chart always has something to draw.
var (
	placeholderLabels = []string{"Today", "Tomorrow", "Next week"}
	placeholderValues = []int{10, 25, 18}
)

// Trend is the engagement time series plus the top posts
type Trend struct {
	Labels   []string               `json:"labels"`
	Values   []int                  `json:"values"`
	HotPosts []entity.ScheduledPost `json:"hot_posts"`
}

// BuildTrend orders posts by send time and turns the earliest TrendWindow of
// them into labelled points. Labels are relative to now ("3 days ago",
// "2 hours from now"). HotPosts ranks the full set, not just the window, by
// total interactions descending; equal totals go earliest send time first.
func BuildTrend(posts []entity.ScheduledPost, now time.Time) Trend {
	sorted := SortByScheduledFor(posts)

	window := sorted
	if len(window) > TrendWindow {
		window = window[:TrendWindow]
	}

	trend := Trend{
		Labels: make([]string, 0, len(window)),
		Values: make([]int, 0, len(window)),
	}
	for _, p := range window {
		trend.Labels = append(trend.Labels, humanize.RelTime(p.ScheduledFor, now, "ago", "from now"))
		trend.Values = append(trend.Values, TotalInteractions(p.Analytics))
	}

	trend.HotPosts = HotPosts(sorted, HotPostsLimit)

	if len(trend.Labels) == 0 {
		trend.Labels = slices.Clone(placeholderLabels)
		trend.Values = slices.Clone(placeholderValues)
	}

	return trend
}

// HotPosts returns up to limit posts with the most interactions. The sort is
// stable so ties preserve input order.
func HotPosts(posts []entity.ScheduledPost, limit int) []entity.ScheduledPost {
	ranked := clonePosts(posts)
	slices.SortStableFunc(ranked, func(a, b entity.ScheduledPost) int {
		return TotalInteractions(b.Analytics) - TotalInteractions(a.Analytics)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// SortByScheduledFor returns a copy of posts in ascending send time.
// Equal send times keep input order.
func SortByScheduledFor(posts []entity.ScheduledPost) []entity.ScheduledPost {
	sorted := clonePosts(posts)
	slices.SortStableFunc(sorted, func(a, b entity.ScheduledPost) int {
		return a.ScheduledFor.Compare(b.ScheduledFor)
	})
	return sorted
}

func clonePosts(posts []entity.ScheduledPost) []entity.ScheduledPost {
	out := make([]entity.ScheduledPost, len(posts))
	for i, p := range posts {
		out[i] = p.Clone()
	}
	return out
}
