package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tinylink/internal/domain"
	"tinylink/internal/service"
	"tinylink/internal/service/mocks"
	"tinylink/internal/store"
)

const baseURL = "http://short.url"

func newTestService(t *testing.T) (*service.LinkService, *mocks.MockLinkStore, *mocks.MockCodeGenerator) {
	st := mocks.NewMockLinkStore(t)
	gen := mocks.NewMockCodeGenerator(t)
	return service.NewLinkService(st, gen, baseURL), st, gen
}

func TestShorten_Success(t *testing.T) {
	svc, st, gen := newTestService(t)

	gen.EXPECT().Generate().Return("Ab3xY9k", nil)
	st.EXPECT().CreateLink(mock.Anything, "Ab3xY9k", "https://example.com").Return(&domain.Link{
		ID:        1,
		Code:      "Ab3xY9k",
		URL:       "https://example.com",
		CreatedAt: time.Now(),
	}, nil)

	resp, err := svc.Shorten(t.Context(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ab3xY9k", resp.Code)
	assert.Equal(t, "http://short.url/Ab3xY9k", resp.ShortURL)
	assert.Equal(t, "https://example.com", resp.URL)
}

func TestShorten_GeneratorError(t *testing.T) {
	svc, _, gen := newTestService(t)

	gen.EXPECT().Generate().Return("", errors.New("alphabet exhausted"))

	_, err := svc.Shorten(t.Context(), "https://example.com")
	assert.Error(t, err)
}

func TestShorten_CodeCollision(t *testing.T) {
	svc, st, gen := newTestService(t)

	gen.EXPECT().Generate().Return("taken", nil).Once()
	st.EXPECT().CreateLink(mock.Anything, "taken", "https://example.com").Return(nil, store.ErrCodeExists).Once()

	_, err := svc.Shorten(t.Context(), "https://example.com")
	assert.ErrorIs(t, err, service.ErrCodeTaken)
}

func TestShorten_StoreError(t *testing.T) {
	svc, st, gen := newTestService(t)

	gen.EXPECT().Generate().Return("code01", nil)
	st.EXPECT().CreateLink(mock.Anything, "code01", "https://example.com").Return(nil, store.ErrUnavailable)

	_, err := svc.Shorten(t.Context(), "https://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.NotErrorIs(t, err, service.ErrCodeTaken)
}

func TestResolve_CountsVisit(t *testing.T) {
	svc, st, _ := newTestService(t)

	st.EXPECT().FindByCode(mock.Anything, "abc123").Return(&domain.Link{Code: "abc123", URL: "https://example.com/target"}, nil)
	st.EXPECT().IncrementVisits(mock.Anything, "abc123").Return(nil).Once()

	target, err := svc.Resolve(t.Context(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/target", target)
}

func TestResolve_NotFound(t *testing.T) {
	svc, st, _ := newTestService(t)

	st.EXPECT().FindByCode(mock.Anything, "missing").Return(nil, store.ErrNotFound)

	_, err := svc.Resolve(t.Context(), "missing")
	assert.ErrorIs(t, err, service.ErrLinkNotFound)
}

func TestResolve_IncrementError(t *testing.T) {
	svc, st, _ := newTestService(t)

	st.EXPECT().FindByCode(mock.Anything, "abc123").Return(&domain.Link{Code: "abc123", URL: "https://example.com"}, nil)
	st.EXPECT().IncrementVisits(mock.Anything, "abc123").Return(store.ErrUnavailable)

	_, err := svc.Resolve(t.Context(), "abc123")
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

func TestGet_StoreError(t *testing.T) {
	svc, st, _ := newTestService(t)

	st.EXPECT().FindByCode(mock.Anything, "abc123").Return(nil, errors.New("db error"))

	_, err := svc.Get(t.Context(), "abc123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrLinkNotFound)
}

func TestList(t *testing.T) {
	svc, st, _ := newTestService(t)

	st.EXPECT().ListLinks(mock.Anything).Return([]domain.Link{{Code: "b"}, {Code: "a"}}, nil)

	links, err := svc.List(t.Context())
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "b", links[0].Code)
}

func TestList_Error(t *testing.T) {
	svc, st, _ := newTestService(t)

	st.EXPECT().ListLinks(mock.Anything).Return(nil, store.ErrUnavailable)

	_, err := svc.List(t.Context())
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

func TestDelete(t *testing.T) {
	svc, st, _ := newTestService(t)

	st.EXPECT().DeleteLink(mock.Anything, "abc123").Return(true, nil)

	assert.NoError(t, svc.Delete(t.Context(), "abc123"))
}

func TestDelete_NotFound(t *testing.T) {
	svc, st, _ := newTestService(t)

	st.EXPECT().DeleteLink(mock.Anything, "missing").Return(false, nil)

	assert.ErrorIs(t, svc.Delete(t.Context(), "missing"), service.ErrLinkNotFound)
}
