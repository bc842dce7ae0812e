package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"content_syncer/internal/cms"
	"content_syncer/internal/domain"
	"content_syncer/internal/transform"
)

// Loader runs one full load cycle: wipe the store, fetch everything from the
// source, then transform, validate, render and commit item by item.
//
// The two stages differ in strictness on purpose. A fetch failure is fatal
// for the cycle (a silently missing page of posts is worse than no posts),
// while a single malformed item is logged and skipped so the rest of the
// content still loads. Cycles must not run concurrently; the caller
// serializes invocations.
type Loader struct {
	source    Source
	store     Store
	schema    Schema
	renderer  Renderer
	loadState LoadStateStore
	publisher Publisher
	logger    *slog.Logger
}

func NewLoader(
	source Source,
	store Store,
	schema Schema,
	renderer Renderer,
	loadState LoadStateStore,
	publisher Publisher,
	logger *slog.Logger,
) *Loader {
	return &Loader{
		source:    source,
		store:     store,
		schema:    schema,
		renderer:  renderer,
		loadState: loadState,
		publisher: publisher,
		logger:    logger.With("source", source.ID()),
	}
}

func (l *Loader) Load(ctx context.Context) (*domain.LoadStats, error) {
	startTime := time.Now()
	l.logger.Info("starting load cycle", "source_name", l.source.Name())

	// Full refresh: the store is wiped before anything is fetched. If the
	// fetch below fails the store stays empty until the next cycle.
	if err := l.store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear store: %w", err)
	}

	posts, err := l.source.FetchAllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}

	media, err := l.source.FetchAllMedia(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}

	l.logger.Info("fetched items from source", "posts", len(posts), "media", len(media))

	stats := &domain.LoadStats{
		SourceID: l.source.ID(),
		Fetched:  len(posts) + len(media),
	}

	for i := range posts {
		l.processPost(ctx, posts[i], stats)
	}
	for i := range media {
		l.processMedia(ctx, media[i], stats)
	}

	if err := l.updateLoadState(ctx, stats); err != nil {
		return stats, fmt.Errorf("update load state: %w", err)
	}

	stats.Duration = time.Since(startTime)

	l.logger.Info("load cycle completed",
		"fetched", stats.Fetched,
		"committed", stats.Committed,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (l *Loader) processPost(ctx context.Context, post cms.Post, stats *domain.LoadStats) {
	entry, err := transform.PostEntry(post)
	if err != nil {
		l.skipItem(stats, post.Slug, err)
		return
	}

	if err := l.schema.ParseData(entry.ID, entry.Data); err != nil {
		l.skipItem(stats, entry.ID, err)
		return
	}

	if entry.Body != "" {
		rendered, err := l.renderer.Render(entry.Body)
		if err != nil {
			l.skipItem(stats, entry.ID, err)
			return
		}
		entry.Rendered = rendered
	}

	l.commit(ctx, entry, stats)
}

func (l *Loader) processMedia(ctx context.Context, media cms.Media, stats *domain.LoadStats) {
	entry, err := transform.MediaEntry(media)
	if err != nil {
		l.skipItem(stats, media.URL, err)
		return
	}

	if err := l.schema.ParseData(entry.ID, entry.Data); err != nil {
		l.skipItem(stats, entry.ID, err)
		return
	}

	l.commit(ctx, entry, stats)
}

func (l *Loader) commit(ctx context.Context, entry domain.Entry, stats *domain.LoadStats) {
	if err := l.store.Set(ctx, entry); err != nil {
		l.skipItem(stats, entry.ID, err)
		return
	}
	stats.Committed++

	if l.publisher != nil {
		if err := l.publisher.Publish(ctx, &entry); err != nil {
			stats.Errors++
			l.logger.Warn("publish failed", "id", entry.ID, "error", err)
		} else {
			stats.Published++
		}
	}
}

// skipItem records a per-item failure. The item is simply absent from the
// store until the next cycle; nothing retries it within this one.
func (l *Loader) skipItem(stats *domain.LoadStats, id string, err error) {
	stats.Skipped++
	stats.Errors++
	l.logger.Error("skipping item", "id", id, "error", err)
}

func (l *Loader) updateLoadState(ctx context.Context, stats *domain.LoadStats) error {
	if l.loadState == nil {
		return nil
	}

	state, err := l.loadState.Get(ctx, l.source.ID())
	if err != nil {
		return err
	}

	state.SourceID = l.source.ID()
	state.LastLoadedAt = time.Now()
	state.TotalLoaded += int64(stats.Committed)

	return l.loadState.Update(ctx, state)
}
