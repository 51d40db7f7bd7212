package service

//go:generate go tool mockery

import (
	"context"

	"tinylink/internal/domain"
)

type LinkStore interface {
	CreateLink(ctx context.Context, code, url string) (*domain.Link, error)
	FindByCode(ctx context.Context, code string) (*domain.Link, error)
	IncrementVisits(ctx context.Context, code string) error
	ListLinks(ctx context.Context) ([]domain.Link, error)
	DeleteLink(ctx context.Context, code string) (bool, error)
}

type CodeGenerator interface {
	Generate() (string, error)
}
