// Package aggregate computes the read-side views of scheduled posts.
//
// Every function is pure: it takes a snapshot, never mutates it, and
// recomputes its result on each call. Nothing is cached.
package aggregate

import (
	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

// TotalInteractions is the unweighted sum of a post's engagement counters
func TotalInteractions(a entity.Analytics) int {
	return a.Likes + a.Comments + a.Shares + a.Saves
}
