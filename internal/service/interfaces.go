package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"content_syncer/internal/cms"
	"content_syncer/internal/domain"
)

type Source interface {
	ID() string
	Name() string
	FetchAllPosts(ctx context.Context) ([]cms.Post, error)
	FetchAllMedia(ctx context.Context) ([]cms.Media, error)
}

type Store interface {
	Clear(ctx context.Context) error
	Set(ctx context.Context, entry domain.Entry) error
}

type Schema interface {
	ParseData(id string, data any) error
}

type Renderer interface {
	Render(body string) (string, error)
}

type LoadStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.LoadState, error)
	Update(ctx context.Context, state *domain.LoadState) error
}

type Publisher interface {
	Publish(ctx context.Context, entry *domain.Entry) error
	Close() error
}
