package feed

// MediaKind is the kind of media a feed entry shows.
type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaImage MediaKind = "image"
)

// ProductSummary is the promoted product embedded in a feed entry.
type ProductSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Brand string `json:"brand"`
}

type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Entry is one vertically paged unit of the feed.
type Entry struct {
	ID        string         `json:"id"`
	Type      MediaKind      `json:"type"`
	MediaURL  string         `json:"mediaUrl"`
	Thumbnail *string        `json:"thumbnail,omitempty"`
	Product   ProductSummary `json:"product"`
	Author    Author         `json:"author"`
	Likes     int            `json:"likes"`
	Comments  int            `json:"comments"`
	Shares    int            `json:"shares"`
}

// IsVideo reports whether the entry owns a media player.
func (e Entry) IsVideo() bool { return e.Type == MediaVideo }

// Preview is the image shown for the entry in grids: the thumbnail for
// videos, the media itself for images.
func (e Entry) Preview() string {
	if e.IsVideo() && e.Thumbnail != nil {
		return *e.Thumbnail
	}
	return e.MediaURL
}

func ptrString(s string) *string { return &s }
