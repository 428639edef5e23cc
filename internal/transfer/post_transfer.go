package transfer

import "github.com/golang-jwt/jwt/v5"

// SchedulePost is the creation request: a finalized draft, a picked calendar
// date ("2006-01-02") and a slot key from the time-slot catalog.
type SchedulePost struct {
	Platform string `json:"platform"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	TimeKey  string `json:"time_key"`
	ImageURL string `json:"image_url"`
}

// PublishPost asks for an immediate publish of an already scheduled post.
// AccessToken is required for the platforms whose tokens are supplied
// interactively (facebook, threads); wordpress credentials are resolved
// server side by the publisher.
type PublishPost struct {
	PostID      string `json:"post_id"`
	Platform    string `json:"platform"`
	AccessToken string `json:"access_token,omitempty"`
}

// RemovePost names the post to delete.
type RemovePost struct {
	PostID string `json:"post_id"`
}

// PublishDispatch is the wire request handed to the publisher backend.
type PublishDispatch struct {
	OwnerID     string `json:"ownerId"`
	PostID      string `json:"postId"`
	AccessToken string `json:"accessToken,omitempty"`
}

// PublishResult is the publisher backend's response.
type PublishResult struct {
	URL   string `json:"url"`
	Error string `json:"error,omitempty"`
}

// Login is the mock sign-in request.
type Login struct {
	Email string `json:"email"`
}

type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
