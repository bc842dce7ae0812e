package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_syncer/internal/cms"
	"content_syncer/internal/domain"
	"content_syncer/testdata/utils"
)

func TestPostEntry_StripsCategoryPrefixFromSlug(t *testing.T) {
	entry, err := PostEntry(cms.Post{
		Slug:         "frontend/react/hooks-intro",
		CategoryPath: "frontend/react",
		Title:        "Hooks Intro",
	})
	require.NoError(t, err)

	assert.Equal(t, "frontend/react/hooks-intro", entry.ID)
	assert.Equal(t, domain.CollectionPosts, entry.Collection)

	data := entry.Data.(domain.PostData)
	assert.Equal(t, "hooks-intro", data.Slug)
}

func TestPostEntry_PlainSlugWithoutCategory(t *testing.T) {
	entry, err := PostEntry(cms.Post{Slug: "hello-world", Title: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", entry.ID)
}

func TestPostEntry_EmptySlug(t *testing.T) {
	_, err := PostEntry(cms.Post{Title: "No Slug"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty slug")
}

func TestPostEntry_NoTagsYieldsEmptySlice(t *testing.T) {
	entry, err := PostEntry(cms.Post{Slug: "a", Title: "A"})
	require.NoError(t, err)

	data := entry.Data.(domain.PostData)
	require.NotNil(t, data.Tags)
	assert.Empty(t, data.Tags)
}

func TestPostEntry_FlattensTagJoins(t *testing.T) {
	entry, err := PostEntry(cms.Post{
		Slug:  "a",
		Title: "A",
		Tags: []cms.TagJoin{
			{Tag: cms.TagRef{Name: "go"}},
			{Tag: cms.TagRef{Name: "testing"}},
			{Tag: cms.TagRef{}},
		},
	})
	require.NoError(t, err)

	data := entry.Data.(domain.PostData)
	assert.Equal(t, []string{"go", "testing"}, data.Tags)
}

func TestPostEntry_CategoryNameFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		category *cms.Category
		want     string
	}{
		{"name path preferred", &cms.Category{Name: "react", NamePath: utils.Ptr("Frontend / React")}, "Frontend / React"},
		{"raw name fallback", &cms.Category{Name: "react"}, "react"},
		{"empty name path ignored", &cms.Category{Name: "react", NamePath: utils.Ptr("")}, "react"},
		{"no category", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := PostEntry(cms.Post{Slug: "a", Title: "A", Category: tt.category})
			require.NoError(t, err)
			assert.Equal(t, tt.want, entry.Data.(domain.PostData).Category)
		})
	}
}

func TestPostEntry_ParsesDates(t *testing.T) {
	entry, err := PostEntry(cms.Post{
		Slug:        "a",
		Title:       "A",
		PublishedAt: "2024-03-01T10:30:00Z",
	})
	require.NoError(t, err)

	data := entry.Data.(domain.PostData)
	require.NotNil(t, data.PublishedAt)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), *data.PublishedAt)

	// Absent optional dates stay unset, not "now".
	assert.Nil(t, data.UpdatedAt)
}

func TestPostEntry_MalformedDate(t *testing.T) {
	_, err := PostEntry(cms.Post{Slug: "a", Title: "A", PublishedAt: "yesterday"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publishedAt")
}

func TestPostEntry_ContentBecomesBody(t *testing.T) {
	entry, err := PostEntry(cms.Post{
		Slug:    "a",
		Title:   "A",
		Content: utils.Ptr("# Heading\n\nText."),
	})
	require.NoError(t, err)
	assert.Equal(t, "# Heading\n\nText.", entry.Body)

	entry, err = PostEntry(cms.Post{Slug: "b", Title: "B"})
	require.NoError(t, err)
	assert.Empty(t, entry.Body)
}

func TestMediaEntry_URLIsIdentifier(t *testing.T) {
	entry, err := MediaEntry(cms.Media{
		URL:   "/images/cover.jpg",
		Alt:   utils.Ptr("cover"),
		Width: utils.Ptr(800),
	})
	require.NoError(t, err)

	assert.Equal(t, "/images/cover.jpg", entry.ID)
	assert.Equal(t, domain.CollectionMedia, entry.Collection)

	data := entry.Data.(domain.MediaData)
	assert.Equal(t, "/images/cover.jpg", data.URL)
	assert.Equal(t, "cover", *data.Alt)
	assert.Nil(t, data.Height)
}

func TestMediaEntry_MissingURL(t *testing.T) {
	_, err := MediaEntry(cms.Media{})
	require.Error(t, err)
}
