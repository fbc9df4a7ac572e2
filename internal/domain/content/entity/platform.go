package entity

// Platform is one of the supported social networks
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformPinterest Platform = "pinterest"
)

// Platforms lists every supported platform in display order
var Platforms = []Platform{PlatformInstagram, PlatformFacebook, PlatformPinterest}

// IsValid reports whether p is a supported platform
func (p Platform) IsValid() bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformPinterest:
		return true
	}
	return false
}

// ParsePlatform parses a string into a Platform
func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	if !p.IsValid() {
		return "", ErrInvalidPlatform
	}
	return p, nil
}

// MediaType is the post format recommended for or used by a post
type MediaType string

const (
	MediaTypeCarousel MediaType = "carousel"
	MediaTypeReel     MediaType = "reel"
	MediaTypeStory    MediaType = "story"
	MediaTypePin      MediaType = "pin"
)

// DefaultMediaType is reported when there is nothing to rank
const DefaultMediaType = MediaTypeCarousel

// IsValid reports whether m is a known media type
func (m MediaType) IsValid() bool {
	switch m {
	case MediaTypeCarousel, MediaTypeReel, MediaTypeStory, MediaTypePin:
		return true
	}
	return false
}

// ParseMediaType parses a string into a MediaType
func ParseMediaType(s string) (MediaType, error) {
	m := MediaType(s)
	if !m.IsValid() {
		return "", ErrInvalidMediaType
	}
	return m, nil
}

// Mood selects the tone of a generated idea
type Mood string

const (
	MoodInspirational Mood = "inspirational"
	MoodEducational   Mood = "educational"
	MoodPromotional   Mood = "promotional"
)

// Moods lists moods in the order the pipeline rotates through them
var Moods = []Mood{MoodInspirational, MoodEducational, MoodPromotional}

// IsValid reports whether m is a known mood
func (m Mood) IsValid() bool {
	switch m {
	case MoodInspirational, MoodEducational, MoodPromotional:
		return true
	}
	return false
}

// ParseMood parses a string into a Mood
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.IsValid() {
		return "", ErrInvalidMood
	}
	return m, nil
}
