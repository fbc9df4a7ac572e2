package aggregate

import (
	"math"

	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

// PlatformSummary is the interaction rollup of one platform
type PlatformSummary struct {
	Platform  entity.Platform          `json:"platform"`
	Total     int                      `json:"total"`
	Formats   map[entity.MediaType]int `json:"formats"`
	TopFormat entity.MediaType         `json:"top_format"`

	// Delta is how far the top format's share of interactions sits above
	// an even split: round(top/total*100) - 50, or 0 without interactions.
	// It is a skew signal, not a change over time.
	Delta int `json:"delta"`
}

// SummariseByPlatform groups posts by platform in order of first appearance.
// Platforms without posts do not appear.
func SummariseByPlatform(posts []entity.ScheduledPost) []PlatformSummary {
	type group struct {
		summary PlatformSummary
		order   []entity.MediaType // formats in first-seen order, for tie-breaks
	}

	var platforms []entity.Platform
	groups := make(map[entity.Platform]*group)

	for _, p := range posts {
		g, ok := groups[p.Platform]
		if !ok {
			g = &group{summary: PlatformSummary{
				Platform: p.Platform,
				Formats:  make(map[entity.MediaType]int),
			}}
			groups[p.Platform] = g
			platforms = append(platforms, p.Platform)
		}

		total := TotalInteractions(p.Analytics)
		g.summary.Total += total
		if _, seen := g.summary.Formats[p.MediaType]; !seen {
			g.order = append(g.order, p.MediaType)
		}
		g.summary.Formats[p.MediaType] += total
	}

	out := make([]PlatformSummary, 0, len(platforms))
	for _, platform := range platforms {
		g := groups[platform]
		s := g.summary

		s.TopFormat = entity.DefaultMediaType
		top := 0
		for i, format := range g.order {
			if i == 0 || s.Formats[format] > top {
				s.TopFormat = format
				top = s.Formats[format]
			}
		}

		if s.Total > 0 {
			s.Delta = int(math.Round(float64(top)/float64(s.Total)*100)) - 50
		}

		out = append(out, s)
	}

	return out
}
