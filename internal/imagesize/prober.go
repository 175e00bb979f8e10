package imagesize

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// maxHeaderBytes bounds how much of an image body is read to find its header.
const maxHeaderBytes = 1 << 20

// Prober fetches images over HTTP and decodes only their headers.
type Prober struct {
	client *http.Client
	logger *zap.Logger
}

// NewProber creates a Prober with a per-request timeout.
func NewProber(timeout time.Duration, logger *zap.Logger) *Prober {
	return &Prober{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Probe returns the pixel size of the image at url.
func (p *Prober) Probe(ctx context.Context, url string) (Size, error) {
	if url == "" {
		return Size{}, fmt.Errorf("empty image url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return Size{}, fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return Size{}, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Size{}, fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}

	cfg, format, err := image.DecodeConfig(io.LimitReader(resp.Body, maxHeaderBytes))
	if err != nil {
		return Size{}, fmt.Errorf("decode image header: %w", err)
	}

	p.logger.Debug("Image probed",
		zap.String("url", url),
		zap.String("format", format),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Duration("duration", time.Since(start)),
	)
	return Size{Width: cfg.Width, Height: cfg.Height}, nil
}
