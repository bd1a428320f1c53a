package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"berita_scrapper/internal/config"
	"berita_scrapper/internal/di"
	"berita_scrapper/internal/domain"
)

func main() {
	page := flag.Int("page", 1, "nomor halaman yang di-scrape (>= 1)")
	all := flag.Bool("all", false, "scrape semua halaman sampai habis")
	timeout := flag.Duration("timeout", 10*time.Minute, "batas waktu keseluruhan")
	flag.Parse()

	log.SetOutput(os.Stdout)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("konfigurasi tidak valid: %v", err)
	}

	service, err := di.InitializeBeritaService(cfg)
	if err != nil {
		log.Fatalf("gagal inisialisasi: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var articles []domain.Article
	if *all {
		articles = service.ScrapeAll(ctx)
	} else {
		articles, err = service.ScrapePage(ctx, *page)
		if err != nil {
			log.Fatalf("scraping failed: %v", err)
		}
	}

	if len(articles) == 0 {
		fmt.Println("Tidak ada artikel ditemukan atau gagal scraping.")
		return
	}

	fmt.Println("=== Hasil Scraping ===")
	for _, a := range articles {
		fmt.Printf("[%s] %s\n%s\n%s\n\n", a.Date, a.Title, a.Link, a.Description)
	}
}
