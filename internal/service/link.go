package service

import (
	"context"
	"errors"
	"fmt"

	"tinylink/internal/domain"
	"tinylink/internal/store"
)

var (
	ErrLinkNotFound = errors.New("link not found")
	ErrCodeTaken    = errors.New("short code already taken")
)

type LinkService struct {
	store     LinkStore
	generator CodeGenerator
	baseURL   string
}

func NewLinkService(links LinkStore, generator CodeGenerator, baseURL string) *LinkService {
	return &LinkService{
		store:     links,
		generator: generator,
		baseURL:   baseURL,
	}
}

// Shorten stores url under a freshly generated code. A collision with an
// existing code is returned as ErrCodeTaken without retrying.
func (s *LinkService) Shorten(ctx context.Context, url string) (*domain.ShortenResponse, error) {
	code, err := s.generator.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate short code: %w", err)
	}

	link, err := s.store.CreateLink(ctx, code, url)
	if err != nil {
		if errors.Is(err, store.ErrCodeExists) {
			return nil, ErrCodeTaken
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return &domain.ShortenResponse{
		Code:     link.Code,
		ShortURL: fmt.Sprintf("%s/%s", s.baseURL, link.Code),
		URL:      link.URL,
	}, nil
}

// Resolve returns the target of code and counts one visit.
func (s *LinkService) Resolve(ctx context.Context, code string) (string, error) {
	link, err := s.Get(ctx, code)
	if err != nil {
		return "", err
	}

	if err := s.store.IncrementVisits(ctx, code); err != nil {
		return "", fmt.Errorf("failed to record visit: %w", err)
	}
	return link.URL, nil
}

func (s *LinkService) Get(ctx context.Context, code string) (*domain.Link, error) {
	link, err := s.store.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return link, nil
}

func (s *LinkService) List(ctx context.Context) ([]domain.Link, error) {
	links, err := s.store.ListLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

func (s *LinkService) Delete(ctx context.Context, code string) error {
	deleted, err := s.store.DeleteLink(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	if !deleted {
		return ErrLinkNotFound
	}
	return nil
}
