package entity

import "time"

// PostIdea is an AI-style post suggestion not yet tied to an account or time.
// Ideas are immutable once generated.
type PostIdea struct {
	ID               string     `json:"id"`
	Category         string     `json:"category"`
	Topic            string     `json:"topic"`
	Mood             Mood       `json:"mood"`
	Hook             string     `json:"hook"`
	Caption          string     `json:"caption"`
	Hashtags         []string   `json:"hashtags"`
	RecommendedMedia MediaType  `json:"recommended_media"`
	Platforms        []Platform `json:"platforms"`
	CreatedAt        time.Time  `json:"created_at"`
}

// DefaultPlatform returns the platform preselected for this idea
func (i *PostIdea) DefaultPlatform() Platform {
	if len(i.Platforms) == 0 {
		return PlatformInstagram
	}
	return i.Platforms[0]
}

// Clone returns a copy that shares no slices with i
func (i PostIdea) Clone() PostIdea {
	i.Hashtags = cloneStrings(i.Hashtags)
	if i.Platforms != nil {
		platforms := make([]Platform, len(i.Platforms))
		copy(platforms, i.Platforms)
		i.Platforms = platforms
	}
	return i
}
