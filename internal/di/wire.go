//go:build wireinject

package di

import (
	"net/http"

	"github.com/google/wire"

	"berita_scrapper/internal/config"
	"berita_scrapper/internal/handler/httpapi"
	"berita_scrapper/internal/usecase"
)

var serviceSet = wire.NewSet(
	provideFetcher,
	provideScraper,
	provideBeritaConfig,
	usecase.NewBeritaService,
)

// InitializeServer merakit http.Server lengkap dengan router dan handler.
func InitializeServer(cfg *config.Config) (*http.Server, error) {
	wire.Build(
		serviceSet,
		wire.Bind(new(httpapi.BeritaService), new(*usecase.BeritaService)),
		httpapi.NewBeritaHandler,
		provideServer,
	)
	return nil, nil
}

// InitializeBeritaService merakit usecase saja, dipakai oleh scraper-cli.
func InitializeBeritaService(cfg *config.Config) (*usecase.BeritaService, error) {
	wire.Build(serviceSet)
	return nil, nil
}
