package handler

//go:generate go tool mockery

import (
	"context"

	"tinylink/internal/domain"
	"tinylink/internal/store"
)

type LinkService interface {
	Shorten(ctx context.Context, url string) (*domain.ShortenResponse, error)
	Resolve(ctx context.Context, code string) (string, error)
	Get(ctx context.Context, code string) (*domain.Link, error)
	List(ctx context.Context) ([]domain.Link, error)
	Delete(ctx context.Context, code string) error
}

type URLValidator interface {
	Normalize(rawURL string) string
	ValidateURL(rawURL string) error
}

type HealthChecker interface {
	Ping(ctx context.Context) error
	Kind() store.Kind
}
