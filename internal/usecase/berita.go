package usecase

import (
	"context"
	"log"
	"time"

	"berita_scrapper/internal/domain"
	"berita_scrapper/internal/repository"
)

// BeritaConfig mengatur loop semua halaman. Nilai nol berarti tanpa jeda dan tanpa batas halaman.
type BeritaConfig struct {
	PageDelay time.Duration
	MaxPages  int
}

type BeritaService struct {
	scraper repository.BeritaScraper
	cfg     BeritaConfig
}

func NewBeritaService(scraper repository.BeritaScraper, cfg BeritaConfig) *BeritaService {
	return &BeritaService{scraper: scraper, cfg: cfg}
}

// ScrapePage mengambil satu halaman. Fetch yang gagal hanya dicatat di log
// dan menghasilkan slice kosong.
func (s *BeritaService) ScrapePage(ctx context.Context, page int) ([]domain.Article, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	articles, err := s.scraper.ScrapePage(ctx, page)
	if err != nil {
		log.Printf("⚠️  Halaman %d gagal diambil: %v", page, err)
		return []domain.Article{}, nil
	}
	return articles, nil
}

// ScrapeAll menelusuri halaman mulai dari 1 sampai fetch gagal atau halaman kosong.
func (s *BeritaService) ScrapeAll(ctx context.Context) []domain.Article {
	all := []domain.Article{}

	for page := 1; s.cfg.MaxPages <= 0 || page <= s.cfg.MaxPages; page++ {
		articles, err := s.scraper.ScrapePage(ctx, page)
		if err != nil {
			log.Printf("ℹ️  Berhenti di halaman %d, fetch gagal: %v", page, err)
			break
		}
		if len(articles) == 0 {
			log.Printf("ℹ️  Berhenti di halaman %d, tidak ada artikel.", page)
			break
		}

		all = append(all, articles...)

		if s.cfg.PageDelay > 0 {
			// Jeda kecil antar halaman agar tidak membebani situs sekolah
			select {
			case <-ctx.Done():
				return all
			case <-time.After(s.cfg.PageDelay):
			}
		}
	}

	log.Printf("✅ %d artikel terkumpul dari semua halaman.", len(all))
	return all
}
