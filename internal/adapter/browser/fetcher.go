package browser

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"berita_scrapper/internal/domain"
	"berita_scrapper/internal/repository"
)

// Fetcher merender halaman lewat headless Chrome/Brave/Chromium.
// Dipakai kalau situs mulai menolak client HTTP biasa.
type Fetcher struct {
	execPath string
	timeout  time.Duration
}

var _ repository.PageFetcher = (*Fetcher)(nil)

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		execPath: findFirstExecutable("brave", "brave-browser", "chromium-browser", "chromium", "google-chrome"),
		timeout:  timeout,
	}
}

func findFirstExecutable(executables ...string) string {
	for _, executable := range executables {
		path, err := exec.LookPath(executable)
		if err == nil {
			return path
		}
	}
	return ""
}

func (f *Fetcher) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := chromedp.DefaultExecAllocatorOptions[:]
	opts = append(opts, chromedp.Flag("headless", true))
	if f.execPath != "" {
		opts = append(opts, chromedp.ExecPath(f.execPath))
	}
	return opts
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, f.allocatorOptions()...)
	defer cancel()

	taskCtx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(log.Printf))
	defer cancel()

	resp, err := chromedp.RunResponse(taskCtx, chromedp.Navigate(url))
	if err != nil {
		log.Printf("❌ Error fetching URL %s lewat browser: %v", url, err)
		return "", &domain.FetchError{URL: url, Err: fmt.Errorf("chromedp navigate: %w", err)}
	}
	if resp != nil && (resp.Status < 200 || resp.Status > 299) {
		log.Printf("❌ Error fetching URL %s lewat browser: status %d", url, resp.Status)
		return "", &domain.FetchError{
			URL:        url,
			StatusCode: int(resp.Status),
			Err:        fmt.Errorf("status %d", resp.Status),
		}
	}

	var htmlBody string
	if err := chromedp.Run(taskCtx, chromedp.OuterHTML("html", &htmlBody, chromedp.ByQuery)); err != nil {
		log.Printf("❌ Gagal membaca HTML %s: %v", url, err)
		return "", &domain.FetchError{URL: url, Err: fmt.Errorf("chromedp outer html: %w", err)}
	}

	return htmlBody, nil
}
