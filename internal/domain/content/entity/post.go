package entity

import "time"

// PostStatus represents the lifecycle state of a scheduled post
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPosted    PostStatus = "posted"
)

// IsValid reports whether s is a known post status
func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusDraft, PostStatusScheduled, PostStatusPosted:
		return true
	}
	return false
}

func (s PostStatus) rank() int {
	switch s {
	case PostStatusDraft:
		return 0
	case PostStatusScheduled:
		return 1
	case PostStatusPosted:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether a post may move from s to next.
// Status only advances draft -> scheduled -> posted, one step at a time.
func (s PostStatus) CanTransitionTo(next PostStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	return next.rank() == s.rank()+1
}

// ParsePostStatus parses a string into a PostStatus
func ParsePostStatus(s string) (PostStatus, error) {
	st := PostStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidSeed
	}
	return st, nil
}

// Analytics holds engagement counters of a post.
// They are filled by ingestion outside this service and only read here.
type Analytics struct {
	Likes    int `json:"likes" yaml:"likes"`
	Comments int `json:"comments" yaml:"comments"`
	Shares   int `json:"shares" yaml:"shares"`
	Saves    int `json:"saves" yaml:"saves"`
}

// ScheduledPost is an idea materialized with an account, platform and send time
type ScheduledPost struct {
	ID           string     `json:"id"`
	AccountID    string     `json:"account_id"`
	Platform     Platform   `json:"platform"`
	Category     string     `json:"category"`
	Topic        string     `json:"topic"`
	Caption      string     `json:"caption"`
	Hashtags     []string   `json:"hashtags"`
	MediaType    MediaType  `json:"media_type"`
	ScheduledFor time.Time  `json:"scheduled_for"`
	Status       PostStatus `json:"status"`
	Analytics    Analytics  `json:"analytics"`
}

// Clone returns a copy that shares no slices with p
func (p ScheduledPost) Clone() ScheduledPost {
	p.Hashtags = cloneStrings(p.Hashtags)
	return p
}

// Validate checks fields of a post supplied as seed data
func (p *ScheduledPost) Validate() error {
	if p.ID == "" || p.AccountID == "" {
		return ErrInvalidSeed
	}
	if !p.Platform.IsValid() || !p.MediaType.IsValid() || !p.Status.IsValid() {
		return ErrInvalidSeed
	}
	if p.ScheduledFor.IsZero() {
		return ErrInvalidSeed
	}
	return nil
}
