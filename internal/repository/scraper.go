package repository

import (
	"context"

	"berita_scrapper/internal/domain"
)

// PageFetcher mengambil HTML mentah dari satu URL.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// BeritaScraper mengambil dan mem-parsing satu halaman daftar berita.
// Error berarti fetch gagal; halaman tanpa artikel mengembalikan slice kosong dan nil.
type BeritaScraper interface {
	ScrapePage(ctx context.Context, page int) ([]domain.Article, error)
}
