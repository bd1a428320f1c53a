package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berita_scrapper/internal/adapter/browser"
	"berita_scrapper/internal/adapter/httpclient"
	"berita_scrapper/internal/config"
)

func TestProvideFetcher(t *testing.T) {
	cfg := &config.Config{FetchMode: config.FetchModeHTTP}
	assert.IsType(t, &httpclient.Fetcher{}, provideFetcher(cfg))

	cfg.FetchMode = config.FetchModeBrowser
	assert.IsType(t, &browser.Fetcher{}, provideFetcher(cfg))
}

func TestInitializeServer(t *testing.T) {
	cfg := &config.Config{Host: "127.0.0.1", Port: "0", FetchMode: config.FetchModeHTTP}

	server, err := InitializeServer(cfg)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", server.Addr)
	assert.NotNil(t, server.Handler)
}
