package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"berita_scrapper/internal/config"
	"berita_scrapper/internal/di"
)

// loadEnv memuat variabel lingkungan dari file .env
func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  File .env tidak ditemukan, menggunakan variabel lingkungan dari sistem.")
	}
}

func main() {
	log.SetOutput(os.Stdout)
	loadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfigurasi tidak valid: %v", err)
	}

	server, err := di.InitializeServer(cfg)
	if err != nil {
		log.Fatalf("❌ Gagal inisialisasi server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🚀 Berita Scraper API berjalan di http://%s (fetch mode: %s)", server.Addr, cfg.FetchMode)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server gagal: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Gagal menghentikan server dengan rapi: %v", err)
	}
	log.Println("👋 Server berhenti.")
}
