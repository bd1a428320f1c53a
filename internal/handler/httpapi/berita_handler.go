package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"berita_scrapper/internal/domain"
)

// BeritaService adalah usecase yang dipakai handler.
type BeritaService interface {
	ScrapePage(ctx context.Context, page int) ([]domain.Article, error)
	ScrapeAll(ctx context.Context) []domain.Article
}

// ErrorResponse adalah body JSON untuk parameter yang tidak valid.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// BeritaHandler mengelola dependensi untuk endpoint /scrape-berita
type BeritaHandler struct {
	service BeritaService
}

func NewBeritaHandler(service BeritaService) *BeritaHandler {
	return &BeritaHandler{service: service}
}

// HandleScrapePage menangani GET /scrape-berita?page=N
func (h *BeritaHandler) HandleScrapePage(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSONResponse(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: "page must be an integer"})
			return
		}
		page = n
	}
	if page < 1 {
		writeJSONResponse(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: "page must be greater than or equal to 1"})
		return
	}

	articles, err := h.service.ScrapePage(r.Context(), page)
	if err != nil {
		writeJSONResponse(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error()})
		return
	}

	log.Printf("✅ %d artikel ditemukan di halaman %d", len(articles), page)
	writeJSONResponse(w, http.StatusOK, nonNil(articles))
}

// HandleScrapeAll menangani GET /scrape-berita/all. Bisa lama karena semua halaman diambil berurutan.
func (h *BeritaHandler) HandleScrapeAll(w http.ResponseWriter, r *http.Request) {
	log.Printf("🚀 Memulai scraping semua halaman...")
	articles := h.service.ScrapeAll(r.Context())
	writeJSONResponse(w, http.StatusOK, nonNil(articles))
}

func nonNil(articles []domain.Article) []domain.Article {
	if articles == nil {
		return []domain.Article{}
	}
	return articles
}

// writeJSONResponse adalah helper untuk mengirim balasan JSON
func writeJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("⚠️  Gagal menulis response JSON: %v", err)
	}
}
