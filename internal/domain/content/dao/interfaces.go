package dao

import (
	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

// Collection names an ordered entity collection of the store
type Collection string

const (
	CollectionAccounts  Collection = "accounts"
	CollectionTemplates Collection = "category_templates"
	CollectionIdeas     Collection = "post_ideas"
	CollectionPosts     Collection = "scheduled_posts"
	CollectionInsights  Collection = "engagement_insights"
)

// Id prefixes per collection
const (
	PrefixAccount  = "acc"
	PrefixTemplate = "tpl"
	PrefixIdea     = "idea"
	PrefixPost     = "post"
	PrefixInsight  = "ins"
)

// IDGenerator assigns collision-free identifiers
type IDGenerator interface {
	// NewID returns a fresh id of the form <prefix>_<token>
	NewID(prefix string) string
}

// AccountReader gives read access to seeded accounts
type AccountReader interface {
	Accounts() []entity.Account
	Account(id string) (entity.Account, bool)
}

// TemplateReader gives read access to category templates
type TemplateReader interface {
	CategoryTemplates() []entity.CategoryTemplate
}

// IdeaRepository stores generated post ideas in insertion order
type IdeaRepository interface {
	IDGenerator

	// AppendIdea adds an idea at the end of the collection
	AppendIdea(idea entity.PostIdea) error

	// Ideas returns a snapshot of all ideas, oldest first
	Ideas() []entity.PostIdea

	// Idea returns a snapshot of a single idea
	Idea(id string) (entity.PostIdea, bool)
}

// PostRepository stores scheduled posts in insertion order
type PostRepository interface {
	IDGenerator

	// AppendPost adds a post at the end of the collection
	AppendPost(post entity.ScheduledPost) error

	// AppendBatch appends ideas and posts atomically: either all entities
	// are stored or none are
	AppendBatch(ideas []entity.PostIdea, posts []entity.ScheduledPost) error

	// Posts returns a snapshot of all posts, oldest first
	Posts() []entity.ScheduledPost
}

// SeedWriter loads reference data into the store at startup
type SeedWriter interface {
	AppendAccount(acc entity.Account) error
	AppendTemplate(tmpl entity.CategoryTemplate) error
	AppendInsight(ins entity.EngagementInsight) error
	AppendPost(post entity.ScheduledPost) error
}
