package api

// Wire types mirror the backend's snake_case JSON. Client types further down
// are what the rest of the CLI works with; see normalize.go for the mapping.

// ContentType is the kind of a publication
type ContentType string

const (
	ContentPost    ContentType = "post"
	ContentArticle ContentType = "article"
	ContentQuote   ContentType = "quote"
)

// Valid reports whether t is one of the known content types
func (t ContentType) Valid() bool {
	switch t {
	case ContentPost, ContentArticle, ContentQuote:
		return true
	}
	return false
}

// Role is a normalized account role
type Role string

const (
	RoleCreator Role = "creator"
	RoleExpert  Role = "expert"
	RoleUser    Role = "user"
)

// Wire types

type MediaResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Filename  string `json:"filename"`
	Mime      string `json:"mime"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	CreatedAt string `json:"created_at"`
}

type MediaFileResponse struct {
	URL string `json:"url"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	// IconURL holds either an absolute URL or a media id
	IconURL      string                 `json:"icon_url,omitempty"`
	RegisteredAt string                 `json:"registered_at,omitempty"`
	Description  string                 `json:"description,omitempty"`
	Role         string                 `json:"role,omitempty"`
	Statistic    map[string]interface{} `json:"statistic,omitempty"`
}

type FeedItem struct {
	ID              string          `json:"id"`
	AuthorID        string          `json:"author_id"`
	Type            ContentType     `json:"type"`
	PublicationDate string          `json:"publication_date"`
	Visibility      string          `json:"visibility,omitempty"`
	Title           string          `json:"title,omitempty"`
	Content         string          `json:"content,omitempty"`
	Source          string          `json:"source,omitempty"`
	LikesCount      *int            `json:"likes_count,omitempty"`
	CommentsCount   *int            `json:"comments_count,omitempty"`
	SavedCount      *int            `json:"saved_count,omitempty"`
	IsLiked         *bool           `json:"is_liked,omitempty"`
	IsSaved         *bool           `json:"is_saved,omitempty"`
	Author          *UserResponse   `json:"author,omitempty"`
	Media           []MediaResponse `json:"media,omitempty"`
}

// FirstMediaID returns the id of the first media descriptor, if any
func (f FeedItem) FirstMediaID() (string, bool) {
	if len(f.Media) == 0 || f.Media[0].ID == "" {
		return "", false
	}
	return f.Media[0].ID, true
}

type FeedResponse struct {
	Items  []FeedItem `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

type CommentResponse struct {
	ID            string        `json:"id"`
	PublicationID string        `json:"publication_id"`
	ParentID      *string       `json:"parent_id,omitempty"`
	AuthorID      string        `json:"author_id"`
	Text          string        `json:"text"`
	CreatedAt     string        `json:"created_at"`
	LikesCount    *int          `json:"likes_count,omitempty"`
	IsLiked       *bool         `json:"is_liked,omitempty"`
	Author        *UserResponse `json:"author,omitempty"`
}

type CommentsResponse struct {
	Items []CommentResponse `json:"items"`
}

type LikesResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// Requests

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePublicationRequest struct {
	Type        ContentType `json:"type"`
	Title       string      `json:"title,omitempty"`
	Content     string      `json:"content,omitempty"`
	Description string      `json:"description,omitempty"`
	Source      string      `json:"source,omitempty"`
	MediaID     string      `json:"mediaId,omitempty"`
	Visibility  string      `json:"visibility"`
}

type UpdatePublicationRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateProfileRequest struct {
	Username  string `json:"username,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

// Client types (camelCase)

// Media is a resolved media asset
type Media struct {
	URL string `json:"url"`
}

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	IconURL      string `json:"iconUrl,omitempty"`
	RegisteredAt string `json:"registeredAt,omitempty"`
	Description  string `json:"description,omitempty"`
	Role         Role   `json:"role"`
}

// Publication is a feed item after normalization and enrichment. Author is
// nil when neither embedded nor fetched; Media is nil until resolved.
type Publication struct {
	ID              string      `json:"id"`
	AuthorID        string      `json:"authorId"`
	Type            ContentType `json:"type"`
	Title           string      `json:"title,omitempty"`
	Content         string      `json:"content,omitempty"`
	Source          string      `json:"source,omitempty"`
	PublicationDate string      `json:"publicationDate"`
	Visibility      string      `json:"visibility,omitempty"`
	LikesCount      int         `json:"likesCount"`
	CommentsCount   int         `json:"commentsCount"`
	SavedCount      int         `json:"savedCount"`
	IsLiked         bool        `json:"isLiked"`
	IsSaved         bool        `json:"isSaved"`
	Author          *User       `json:"author,omitempty"`
	Media           *Media      `json:"media,omitempty"`
}

// Feed is one page worth of publications. Limit and Offset describe the
// page that was requested, not everything held by a paginator.
type Feed struct {
	Items  []Publication `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type Comment struct {
	ID            string  `json:"id"`
	PublicationID string  `json:"publicationId"`
	ParentID      *string `json:"parentId"`
	AuthorID      string  `json:"authorId"`
	Text          string  `json:"text"`
	CreatedAt     string  `json:"createdAt"`
	LikesCount    int     `json:"likesCount"`
	IsLiked       bool    `json:"isLiked"`
	Author        *User   `json:"author,omitempty"`
}

type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	Role      Role   `json:"role"`
}
