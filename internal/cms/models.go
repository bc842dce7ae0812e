package cms

// PostsEnvelope is the response shape of GET /api/public/posts.
type PostsEnvelope struct {
	Posts  []Post `json:"posts"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// MediaEnvelope is the response shape of GET /api/public/media.
type MediaEnvelope struct {
	Photos []Media `json:"photos"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// Post is one post record as the CMS returns it. The slug may carry the
// category path as a prefix; timestamps are ISO-8601 strings.
type Post struct {
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Excerpt         *string   `json:"excerpt"`
	Content         *string   `json:"content"`
	CategoryPath    string    `json:"categoryPath"`
	Category        *Category `json:"category"`
	Tags            []TagJoin `json:"tags"`
	CoverImage      *string   `json:"coverImage"`
	PublishedAt     string    `json:"publishedAt"`
	UpdatedAt       string    `json:"updatedAt"`
	Draft           bool      `json:"draft"`
	CommentsEnabled bool      `json:"commentsEnabled"`
}

type Category struct {
	Name     string  `json:"name"`
	NamePath *string `json:"namePath"`
}

// TagJoin mirrors the CMS's join-table rows: [{"tag": {"name": "..."}}].
type TagJoin struct {
	Tag TagRef `json:"tag"`
}

type TagRef struct {
	Name string `json:"name"`
}

// Media is one image record as the CMS returns it.
type Media struct {
	URL        string  `json:"url"`
	Alt        *string `json:"alt"`
	Width      *int    `json:"width"`
	Height     *int    `json:"height"`
	UploadedAt string  `json:"uploadedAt"`
}
