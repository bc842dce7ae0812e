package domain

import "time"

// Collection names match the content collections the rendering layer reads.
type Collection string

const (
	CollectionPosts Collection = "posts"
	CollectionMedia Collection = "media"
)

// Entry is the internal representation of one content item, keyed by a
// stable identifier. Data holds the schema-validated field mapping
// (PostData or MediaData depending on Collection).
type Entry struct {
	ID         string     `json:"id"`
	Collection Collection `json:"collection"`
	Data       any        `json:"data"`
	Body       string     `json:"body,omitempty"`
	Rendered   string     `json:"rendered,omitempty"`
}

// PostData is the field mapping for a blog post entry. Optional fields are
// pointers so that absent values stay absent and schema defaults apply
// downstream instead of zero values.
type PostData struct {
	Title           string     `json:"title" validate:"required"`
	Slug            string     `json:"slug" validate:"required"`
	Excerpt         *string    `json:"excerpt,omitempty"`
	Category        string     `json:"category"`
	CategoryPath    string     `json:"categoryPath"`
	Tags            []string   `json:"tags"`
	CoverImage      *string    `json:"coverImage,omitempty"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
	Draft           bool       `json:"draft"`
	CommentsEnabled bool       `json:"commentsEnabled"`
}

// MediaData is the field mapping for a media entry.
type MediaData struct {
	URL        string     `json:"url" validate:"required"`
	Alt        *string    `json:"alt,omitempty"`
	Width      *int       `json:"width,omitempty"`
	Height     *int       `json:"height,omitempty"`
	UploadedAt *time.Time `json:"uploadedAt,omitempty"`
}

// LoadState tracks progress of load cycles for one source.
type LoadState struct {
	ID           int64     `db:"id"`
	SourceID     string    `db:"source_id"`
	LastLoadedAt time.Time `db:"last_loaded_at"`
	TotalLoaded  int64     `db:"total_loaded"`
}
