package di

import (
	"net/http"

	"berita_scrapper/internal/adapter/browser"
	"berita_scrapper/internal/adapter/httpclient"
	"berita_scrapper/internal/adapter/sman8"
	"berita_scrapper/internal/config"
	"berita_scrapper/internal/handler/httpapi"
	"berita_scrapper/internal/repository"
	"berita_scrapper/internal/usecase"
)

func provideFetcher(cfg *config.Config) repository.PageFetcher {
	if cfg.FetchMode == config.FetchModeBrowser {
		return browser.NewFetcher(cfg.RequestTimeout)
	}
	return httpclient.NewFetcher(httpclient.NewHTTPClient(cfg.RequestTimeout))
}

func provideScraper(cfg *config.Config, fetcher repository.PageFetcher) repository.BeritaScraper {
	return sman8.NewSman8Scraper(fetcher, cfg.BaseURL)
}

func provideBeritaConfig(cfg *config.Config) usecase.BeritaConfig {
	return usecase.BeritaConfig{
		PageDelay: cfg.PageDelay,
		MaxPages:  cfg.MaxPages,
	}
}

func provideServer(cfg *config.Config, handler *httpapi.BeritaHandler) *http.Server {
	return &http.Server{
		Addr:    cfg.Addr(),
		Handler: httpapi.NewRouter(handler),
	}
}
