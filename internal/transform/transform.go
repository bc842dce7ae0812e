// Package transform maps remote CMS records to internal content entries.
package transform

import (
	"fmt"
	"strings"
	"time"

	"content_syncer/internal/cms"
	"content_syncer/internal/domain"
)

// PostEntry maps one CMS post to a content entry. The identifier is
// categoryPath/actualSlug, where actualSlug is the last segment of the
// remote slug so an embedded category prefix is not duplicated.
func PostEntry(post cms.Post) (domain.Entry, error) {
	if post.Slug == "" {
		return domain.Entry{}, fmt.Errorf("post %q: empty slug", post.Title)
	}

	slug := post.Slug
	if i := strings.LastIndex(slug, "/"); i >= 0 {
		slug = slug[i+1:]
	}

	id := slug
	if post.CategoryPath != "" {
		id = post.CategoryPath + "/" + slug
	}

	publishedAt, err := parseTime(post.PublishedAt)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("post %s: publishedAt: %w", id, err)
	}
	updatedAt, err := parseTime(post.UpdatedAt)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("post %s: updatedAt: %w", id, err)
	}

	data := domain.PostData{
		Title:           post.Title,
		Slug:            slug,
		Excerpt:         post.Excerpt,
		Category:        categoryName(post.Category),
		CategoryPath:    post.CategoryPath,
		Tags:            tagNames(post.Tags),
		CoverImage:      post.CoverImage,
		PublishedAt:     publishedAt,
		UpdatedAt:       updatedAt,
		Draft:           post.Draft,
		CommentsEnabled: post.CommentsEnabled,
	}

	entry := domain.Entry{
		ID:         id,
		Collection: domain.CollectionPosts,
		Data:       data,
	}
	if post.Content != nil {
		entry.Body = *post.Content
	}

	return entry, nil
}

// MediaEntry maps one CMS image record to a content entry keyed by its raw
// URL.
func MediaEntry(media cms.Media) (domain.Entry, error) {
	if media.URL == "" {
		return domain.Entry{}, fmt.Errorf("media record has no url")
	}

	uploadedAt, err := parseTime(media.UploadedAt)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("media %s: uploadedAt: %w", media.URL, err)
	}

	return domain.Entry{
		ID:         media.URL,
		Collection: domain.CollectionMedia,
		Data: domain.MediaData{
			URL:        media.URL,
			Alt:        media.Alt,
			Width:      media.Width,
			Height:     media.Height,
			UploadedAt: uploadedAt,
		},
	}, nil
}

// categoryName prefers the precomputed display name path, then the raw
// category name, then empty.
func categoryName(category *cms.Category) string {
	if category == nil {
		return ""
	}
	if category.NamePath != nil && *category.NamePath != "" {
		return *category.NamePath
	}
	return category.Name
}

// tagNames flattens the CMS's join rows into plain tag names. Absence yields
// an empty list, never nil.
func tagNames(joins []cms.TagJoin) []string {
	names := make([]string, 0, len(joins))
	for _, j := range joins {
		if j.Tag.Name != "" {
			names = append(names, j.Tag.Name)
		}
	}
	return names
}

// parseTime parses an ISO-8601 timestamp. An absent value stays absent
// rather than defaulting to now.
func parseTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
