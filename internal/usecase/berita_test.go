package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berita_scrapper/internal/domain"
)

// fakeScraper serves pages from a map; pages not in the map fail like a 404.
type fakeScraper struct {
	pages map[int][]domain.Article
	calls []int
}

func (f *fakeScraper) ScrapePage(ctx context.Context, page int) ([]domain.Article, error) {
	f.calls = append(f.calls, page)
	articles, ok := f.pages[page]
	if !ok {
		return nil, &domain.FetchError{URL: fmt.Sprintf("test?page=%d", page), StatusCode: 404}
	}
	return articles, nil
}

func makeArticles(page, n int) []domain.Article {
	articles := make([]domain.Article, n)
	for i := range articles {
		articles[i] = domain.Article{
			Title:       fmt.Sprintf("p%d-%d", page, i),
			Link:        fmt.Sprintf("/p%d/%d", page, i),
			Date:        "1 Jan 2024",
			Description: "desc",
		}
	}
	return articles
}

func TestScrapePage_InvalidPage(t *testing.T) {
	scraper := &fakeScraper{}
	service := NewBeritaService(scraper, BeritaConfig{})

	for _, page := range []int{0, -1} {
		_, err := service.ScrapePage(context.Background(), page)
		assert.ErrorIs(t, err, ErrInvalidPage)
	}
	assert.Empty(t, scraper.calls, "should not fetch for invalid pages")
}

func TestScrapePage_Success(t *testing.T) {
	scraper := &fakeScraper{pages: map[int][]domain.Article{2: makeArticles(2, 3)}}
	service := NewBeritaService(scraper, BeritaConfig{})

	articles, err := service.ScrapePage(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, makeArticles(2, 3), articles)
	assert.Equal(t, []int{2}, scraper.calls)
}

// TestScrapePage_FetchFailure verifies fetch errors degrade to an empty, non-nil result
func TestScrapePage_FetchFailure(t *testing.T) {
	service := NewBeritaService(&fakeScraper{}, BeritaConfig{})

	articles, err := service.ScrapePage(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, articles)
	assert.Empty(t, articles)
}

// TestScrapeAll_ConcatenatesInPageOrder verifies page 1 articles precede page 2 articles
func TestScrapeAll_ConcatenatesInPageOrder(t *testing.T) {
	scraper := &fakeScraper{pages: map[int][]domain.Article{
		1: makeArticles(1, 5),
		2: makeArticles(2, 3),
	}}
	service := NewBeritaService(scraper, BeritaConfig{})

	articles := service.ScrapeAll(context.Background())

	require.Len(t, articles, 8)
	assert.Equal(t, append(makeArticles(1, 5), makeArticles(2, 3)...), articles)
	assert.Equal(t, []int{1, 2, 3}, scraper.calls)
}

// TestScrapeAll_StopsOnEmptyPage verifies N non-empty pages take N+1 attempts
func TestScrapeAll_StopsOnEmptyPage(t *testing.T) {
	scraper := &fakeScraper{pages: map[int][]domain.Article{
		1: makeArticles(1, 2),
		2: makeArticles(2, 2),
		3: {},
		4: makeArticles(4, 2),
	}}
	service := NewBeritaService(scraper, BeritaConfig{})

	articles := service.ScrapeAll(context.Background())

	assert.Len(t, articles, 4)
	assert.Equal(t, []int{1, 2, 3}, scraper.calls)
}

func TestScrapeAll_FirstFetchFails(t *testing.T) {
	scraper := &fakeScraper{}
	service := NewBeritaService(scraper, BeritaConfig{})

	articles := service.ScrapeAll(context.Background())

	require.NotNil(t, articles)
	assert.Empty(t, articles)
	assert.Equal(t, []int{1}, scraper.calls)
}

func TestScrapeAll_MaxPages(t *testing.T) {
	scraper := &fakeScraper{pages: map[int][]domain.Article{
		1: makeArticles(1, 1),
		2: makeArticles(2, 1),
		3: makeArticles(3, 1),
	}}
	service := NewBeritaService(scraper, BeritaConfig{MaxPages: 2})

	articles := service.ScrapeAll(context.Background())

	assert.Len(t, articles, 2)
	assert.Equal(t, []int{1, 2}, scraper.calls)
}

// TestScrapeAll_DelayHonorsCancel verifies a canceled context cuts the polite delay short
func TestScrapeAll_DelayHonorsCancel(t *testing.T) {
	scraper := &fakeScraper{pages: map[int][]domain.Article{
		1: makeArticles(1, 1),
		2: makeArticles(2, 1),
	}}
	service := NewBeritaService(scraper, BeritaConfig{PageDelay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan []domain.Article, 1)
	go func() { done <- service.ScrapeAll(ctx) }()

	select {
	case articles := <-done:
		assert.Len(t, articles, 1)
		assert.Equal(t, []int{1}, scraper.calls)
	case <-time.After(5 * time.Second):
		t.Fatal("ScrapeAll did not return after cancellation")
	}
}
