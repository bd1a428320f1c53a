package sman8

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"berita_scrapper/internal/domain"
	"berita_scrapper/internal/repository"
)

// DefaultBaseURL adalah halaman daftar berita SMAN 8 Pontianak.
const DefaultBaseURL = "https://sman8ptk.sch.id/berita"

const (
	containerSelector   = "div.post-content"
	titleSelector       = "h3 a"
	dateSelector        = ".post-meta span"
	descriptionSelector = "p"
)

type Sman8Scraper struct {
	fetcher repository.PageFetcher
	baseURL string
}

var _ repository.BeritaScraper = (*Sman8Scraper)(nil)

func NewSman8Scraper(fetcher repository.PageFetcher, baseURL string) *Sman8Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Sman8Scraper{fetcher: fetcher, baseURL: baseURL}
}

// PageURL membentuk URL halaman daftar ke-n.
func (s *Sman8Scraper) PageURL(page int) string {
	return fmt.Sprintf("%s?page=%d", s.baseURL, page)
}

func (s *Sman8Scraper) ScrapePage(ctx context.Context, page int) ([]domain.Article, error) {
	html, err := s.fetcher.Fetch(ctx, s.PageURL(page))
	if err != nil {
		return nil, err
	}
	return ParseArticles(html), nil
}

// ParseArticles mengambil ringkasan artikel sesuai urutan di dokumen.
// Elemen yang hilang diganti placeholder, bukan dibuang.
func ParseArticles(html string) []domain.Article {
	articles := []domain.Article{}
	if html == "" {
		return articles
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return articles
	}

	doc.Find(containerSelector).Each(func(i int, s *goquery.Selection) {
		article := domain.Article{
			Title:       domain.NoTitle,
			Link:        domain.NoLink,
			Date:        domain.NoDate,
			Description: domain.NoDescription,
		}

		if titleEl := s.Find(titleSelector).First(); titleEl.Length() > 0 {
			article.Title = strings.TrimSpace(titleEl.Text())
			if href, ok := titleEl.Attr("href"); ok {
				article.Link = href
			}
		}

		if dateEl := s.Find(dateSelector).First(); dateEl.Length() > 0 {
			article.Date = cleanDate(dateEl.Text())
		}

		if descEl := s.Find(descriptionSelector).First(); descEl.Length() > 0 {
			article.Description = strings.TrimSpace(descEl.Text())
		}

		articles = append(articles, article)
	})

	return articles
}

// cleanDate membuang sisa tag ikon <i> yang kadang ikut di dalam span tanggal.
func cleanDate(text string) string {
	parts := strings.Split(strings.TrimSpace(text), "</i>")
	return strings.TrimSpace(parts[len(parts)-1])
}
