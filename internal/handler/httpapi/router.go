package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// NewRouter memetakan path dan method ke handler. Method lain dijawab 405 oleh mux.
func NewRouter(h *BeritaHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogger)

	router.HandleFunc("/scrape-berita", h.HandleScrapePage).Methods(http.MethodGet)
	router.HandleFunc("/scrape-berita/all", h.HandleScrapeAll).Methods(http.MethodGet)

	return router
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.RequestURI(), time.Since(start).Round(time.Millisecond))
	})
}
