package entity

import "time"

// AccountStatus represents the link state of a social account
type AccountStatus string

const (
	AccountStatusConnected    AccountStatus = "connected"
	AccountStatusPending      AccountStatus = "pending"
	AccountStatusDisconnected AccountStatus = "disconnected"
)

// IsValid reports whether s is a known account status
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusConnected, AccountStatusPending, AccountStatusDisconnected:
		return true
	}
	return false
}

// Account represents a social account the team can post to
type Account struct {
	ID          string        `json:"id" yaml:"id"`
	Platform    Platform      `json:"platform" yaml:"platform"`
	Handle      string        `json:"handle" yaml:"handle"`
	Status      AccountStatus `json:"status" yaml:"status"`
	Followers   int           `json:"followers" yaml:"followers"`
	GrowthRate  float64       `json:"growth_rate" yaml:"growth_rate"`
	Category    string        `json:"category" yaml:"category"`
	ConnectedAt time.Time     `json:"connected_at" yaml:"connected_at"`
}

// IsConnected returns true if the account can be selected as a posting target
func (a *Account) IsConnected() bool {
	return a.Status == AccountStatusConnected
}

// Validate checks seeded account fields
func (a *Account) Validate() error {
	if a.ID == "" || a.Handle == "" {
		return ErrInvalidSeed
	}
	if !a.Platform.IsValid() || !a.Status.IsValid() {
		return ErrInvalidSeed
	}
	return nil
}

// CategoryTemplate is static reference data offering example topics for a category
type CategoryTemplate struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	ExampleTopics []string `json:"example_topics" yaml:"example_topics"`
}

// Clone returns a copy that shares no slices with t
func (t CategoryTemplate) Clone() CategoryTemplate {
	t.ExampleTopics = cloneStrings(t.ExampleTopics)
	return t
}

// InsightDirection tells whether a metric moved up or down
type InsightDirection string

const (
	DirectionUp   InsightDirection = "up"
	DirectionDown InsightDirection = "down"
)

// EngagementInsight is a seeded, read-only engagement signal with a recommendation
type EngagementInsight struct {
	ID             string           `json:"id" yaml:"id"`
	Platform       Platform         `json:"platform" yaml:"platform"`
	Metric         string           `json:"metric" yaml:"metric"`
	Direction      InsightDirection `json:"direction" yaml:"direction"`
	Change         float64          `json:"change" yaml:"change"`
	Recommendation string           `json:"recommendation" yaml:"recommendation"`
}

// Validate checks seeded insight fields
func (i *EngagementInsight) Validate() error {
	if i.ID == "" || !i.Platform.IsValid() {
		return ErrInvalidSeed
	}
	if i.Direction != DirectionUp && i.Direction != DirectionDown {
		return ErrInvalidSeed
	}
	return nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
