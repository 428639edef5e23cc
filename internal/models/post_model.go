package models

import "time"

// ScheduledPost is one platform's dated post created from a content draft.
// Content, Platform and DateTime are fixed at creation; rescheduling is
// delete-and-recreate. DateTime is a naive "2006-01-02T15:04:05" timestamp
// read in a fixed reference zone by convention, never converted.
type ScheduledPost struct {
	ID           string    `db:"id" json:"id"`
	OwnerID      string    `db:"owner_id" json:"owner_id"`
	Platform     string    `db:"platform" json:"platform"`
	Content      string    `db:"content" json:"content"`
	DateTime     string    `db:"date_time" json:"dateTime"`
	Status       string    `db:"status" json:"status"` // Scheduled, Published
	ImageURL     string    `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	WordpressURL string    `db:"wordpress_url" json:"wordpressUrl,omitempty"`
	FacebookURL  string    `db:"facebook_url" json:"facebookUrl,omitempty"`
	ThreadsURL   string    `db:"threads_url" json:"threadsUrl,omitempty"`
}

const (
	PostStatusScheduled = "Scheduled"
	PostStatusPublished = "Published"
)

const (
	PlatformFacebook  = "facebook"
	PlatformWordpress = "wordpress"
	PlatformInstagram = "instagram"
	PlatformLinkedin  = "linkedin"
	PlatformThreads   = "threads"
)

// Platforms lists the platforms a draft can be scheduled to. The supported
// set is a deployment concern; this is the default catalog.
var Platforms = []string{
	PlatformFacebook,
	PlatformWordpress,
	PlatformInstagram,
	PlatformLinkedin,
	PlatformThreads,
}

// KnownPlatform reports whether p is in the default platform catalog.
func KnownPlatform(p string) bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}
