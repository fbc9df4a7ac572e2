package aggregate

import (
	"slices"
	"time"

	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

// DayLayout is the bucket key format
const DayLayout = "2006-01-02"

// DayBuckets maps calendar days to posts. Keys keep first-seen order and
// posts inside a bucket keep input order.
type DayBuckets struct {
	days    []string
	buckets map[string][]entity.ScheduledPost
}

// Days returns bucket keys in first-seen order
func (b *DayBuckets) Days() []string {
	out := make([]string, len(b.days))
	copy(out, b.days)
	return out
}

// Get returns a copy of the posts of a day, or nil
func (b *DayBuckets) Get(day string) []entity.ScheduledPost {
	return slices.Clone(b.buckets[day])
}

// Len returns the number of non-empty days
func (b *DayBuckets) Len() int {
	return len(b.days)
}

// Map returns a copy of the buckets as a plain map
func (b *DayBuckets) Map() map[string][]entity.ScheduledPost {
	out := make(map[string][]entity.ScheduledPost, len(b.buckets))
	for k, v := range b.buckets {
		out[k] = slices.Clone(v)
	}
	return out
}

// DayKey formats the calendar day of t in t's own location
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// GroupPostsByDay buckets posts by the calendar day of their send time
func GroupPostsByDay(posts []entity.ScheduledPost) *DayBuckets {
	b := &DayBuckets{buckets: make(map[string][]entity.ScheduledPost)}
	for _, p := range posts {
		key := DayKey(p.ScheduledFor)
		if _, ok := b.buckets[key]; !ok {
			b.days = append(b.days, key)
		}
		b.buckets[key] = append(b.buckets[key], p.Clone())
	}
	return b
}

// CalendarDay is one column of the weekly calendar
type CalendarDay struct {
	Date    string                 `json:"date"`
	Weekday string                 `json:"weekday"`
	Posts   []entity.ScheduledPost `json:"posts"`
}

// WeekCalendar lays out the Monday-to-Sunday week containing reference.
// Days without posts carry an empty list.
func WeekCalendar(posts []entity.ScheduledPost, reference time.Time) []CalendarDay {
	buckets := GroupPostsByDay(posts)

	offset := (int(reference.Weekday()) + 6) % 7 // days since Monday
	start := time.Date(reference.Year(), reference.Month(), reference.Day()-offset, 0, 0, 0, 0, reference.Location())

	week := make([]CalendarDay, 7)
	for i := range week {
		day := start.AddDate(0, 0, i)
		key := DayKey(day)
		dayPosts := buckets.Get(key)
		if dayPosts == nil {
			dayPosts = []entity.ScheduledPost{}
		}
		week[i] = CalendarDay{
			Date:    key,
			Weekday: day.Weekday().String(),
			Posts:   dayPosts,
		}
	}
	return week
}
