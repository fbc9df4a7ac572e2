package service

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/vadim/neo-studio/internal/domain/content/entity"
)

// maxHashtags caps how many tags an idea carries
const maxHashtags = 5

// categoryProfile describes how ideas of one category are shaped
type categoryProfile struct {
	tags      []string
	platforms []entity.Platform
	media     map[entity.Mood]entity.MediaType // overrides mediaByMood
}

// mediaByMood is the default recommended format per mood
var mediaByMood = map[entity.Mood]entity.MediaType{
	entity.MoodInspirational: entity.MediaTypeReel,
	entity.MoodEducational:   entity.MediaTypeCarousel,
	entity.MoodPromotional:   entity.MediaTypeStory,
}

// categoryProfiles is keyed by the normalized category title
var categoryProfiles = map[string]categoryProfile{
	"marketing growth": {
		tags: []string{
			"#marketingtips", "#growthhacking", "#digitalmarketing", "#contentstrategy",
			"#socialmediamarketing", "#brandgrowth", "#marketingstrategy",
		},
		platforms: []entity.Platform{entity.PlatformInstagram, entity.PlatformFacebook, entity.PlatformPinterest},
	},
	"community building": {
		tags: []string{
			"#community", "#communitybuilding", "#engagement", "#brandlove",
			"#audiencegrowth", "#creatorcommunity",
		},
		platforms: []entity.Platform{entity.PlatformFacebook, entity.PlatformInstagram},
	},
	"product launch": {
		tags: []string{
			"#productlaunch", "#newlaunch", "#launchday", "#comingsoon",
			"#innovation", "#startup",
		},
		platforms: []entity.Platform{entity.PlatformInstagram, entity.PlatformFacebook},
		media: map[entity.Mood]entity.MediaType{
			entity.MoodPromotional: entity.MediaTypeReel,
		},
	},
	"design inspiration": {
		tags: []string{
			"#designinspiration", "#moodboard", "#creativeprocess", "#visualdesign",
			"#aesthetic", "#designtips",
		},
		platforms: []entity.Platform{entity.PlatformPinterest, entity.PlatformInstagram},
		media: map[entity.Mood]entity.MediaType{
			entity.MoodInspirational: entity.MediaTypePin,
			entity.MoodEducational:   entity.MediaTypePin,
		},
	},
	"thought leadership": {
		tags: []string{
			"#leadership", "#thoughtleadership", "#futureofwork", "#strategy",
			"#founderlife", "#insights",
		},
		platforms: []entity.Platform{entity.PlatformFacebook, entity.PlatformInstagram, entity.PlatformPinterest},
		media: map[entity.Mood]entity.MediaType{
			entity.MoodInspirational: entity.MediaTypeCarousel,
		},
	},
}

// genericProfile applies to categories without a dedicated profile
var genericProfile = categoryProfile{
	tags: []string{
		"#contentcreator", "#socialmedia", "#creatorlife", "#growthmindset", "#smallbusiness",
	},
	platforms: []entity.Platform{entity.PlatformInstagram, entity.PlatformFacebook, entity.PlatformPinterest},
}

// DefaultCategories is the representative set used when no category templates are seeded
var DefaultCategories = []string{
	"Marketing Growth",
	"Community Building",
	"Product Launch",
	"Design Inspiration",
}

var hooksByMood = map[entity.Mood][]string{
	entity.MoodInspirational: {
		"What if %s changed everything for you?",
		"Your next breakthrough starts with %s.",
		"Dream bigger: %s is closer than you think.",
	},
	entity.MoodEducational: {
		"3 steps to master %s (save this!)",
		"The %s playbook nobody shares.",
		"Stop guessing: here is how %s really works.",
	},
	entity.MoodPromotional: {
		"It's here: %s is live today.",
		"Limited spots: unlock %s now.",
		"Don't miss out on %s this week.",
	},
}

var captionsByMood = map[entity.Mood]string{
	entity.MoodInspirational: "%[1]s isn't a someday goal. Every %[2]s win started with one small, brave step. " +
		"Tell us the step you're taking this week.",
	entity.MoodEducational: "Here's a quick framework for %[1]s:\n" +
		"1. Start with the problem your audience feels.\n" +
		"2. Show the shift with one concrete example.\n" +
		"3. End with an action they can take today.\n" +
		"Save this for your next %[2]s sprint.",
	entity.MoodPromotional: "%[1]s is ready for you. Built for teams serious about %[2]s. " +
		"Tap the link in bio to claim early access before spots run out.",
}

// Generator builds post ideas from a mood-keyed skeleton. Structure
// (media, platforms, hashtag pool) is a pure function of category and
// mood; only phrasing variants and hashtag sampling use the random source.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// GeneratorOption configures a Generator
type GeneratorOption func(*Generator)

// WithRand sets the random source used for phrasing and hashtag sampling
func WithRand(rnd *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.rnd = rnd
	}
}

// NewGenerator creates a new idea generator
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		seed := uint64(time.Now().UnixNano())
		g.rnd = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return g
}

// Generate builds an idea without an id. Empty category or topic yield a
// generic idea rather than an error.
func (g *Generator) Generate(category, topic string, mood entity.Mood, now time.Time) entity.PostIdea {
	if !mood.IsValid() {
		mood = entity.MoodEducational
	}
	media := RecommendedMedia(category, mood)

	subject := strings.TrimSpace(topic)
	if subject == "" {
		subject = "your next post"
	}
	area := strings.TrimSpace(category)
	if area == "" {
		area = "brand"
	}

	g.mu.Lock()
	hooks := hooksByMood[mood]
	hook := fmt.Sprintf(hooks[g.rnd.IntN(len(hooks))], subject)
	tags := g.sampleTags(HashtagPool(category))
	g.mu.Unlock()

	caption := hook + "\n\n" + fmt.Sprintf(captionsByMood[mood], subject, strings.ToLower(area))

	return entity.PostIdea{
		Category:         category,
		Topic:            topic,
		Mood:             mood,
		Hook:             hook,
		Caption:          caption,
		Hashtags:         tags,
		RecommendedMedia: media,
		Platforms:        SuggestedPlatforms(category, mood),
		CreatedAt:        now,
	}
}

// sampleTags picks up to maxHashtags distinct tags from pool. Caller holds mu.
func (g *Generator) sampleTags(pool []string) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > maxHashtags {
		shuffled = shuffled[:maxHashtags]
	}
	return shuffled
}

func profileFor(category string) (categoryProfile, bool) {
	p, ok := categoryProfiles[normalizeCategory(category)]
	if !ok {
		return genericProfile, false
	}
	return p, true
}

// HashtagPool returns the fixed set of tags ideas of a category draw from
func HashtagPool(category string) []string {
	p, known := profileFor(category)
	pool := make([]string, 0, len(p.tags)+1)
	pool = append(pool, p.tags...)
	if !known {
		if slug := slugTag(category); slug != "" && !slices.Contains(pool, slug) {
			pool = append(pool, slug)
		}
	}
	return pool
}

// RecommendedMedia returns the format suggested for a category and mood
func RecommendedMedia(category string, mood entity.Mood) entity.MediaType {
	p, _ := profileFor(category)
	if m, ok := p.media[mood]; ok {
		return m
	}
	if m, ok := mediaByMood[mood]; ok {
		return m
	}
	return entity.DefaultMediaType
}

// SuggestedPlatforms returns the platform ordering for a category and mood.
// The first entry is the default target. Pin-first ideas lead with pinterest.
func SuggestedPlatforms(category string, mood entity.Mood) []entity.Platform {
	p, _ := profileFor(category)
	out := make([]entity.Platform, 0, len(p.platforms)+1)
	if RecommendedMedia(category, mood) == entity.MediaTypePin {
		out = append(out, entity.PlatformPinterest)
	}
	for _, platform := range p.platforms {
		if platform == entity.PlatformPinterest && len(out) > 0 && out[0] == entity.PlatformPinterest {
			continue
		}
		out = append(out, platform)
	}
	return out
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.Join(strings.Fields(category), " "))
}

// slugTag turns "Fitness & Wellness" into "#fitnesswellness"
func slugTag(category string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(category) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "#" + b.String()
}
