// Package media downloads remote photos and normalises them for embedding in
// generated reports.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	_ "golang.org/x/image/webp"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

const maxPhotoBytes = 20 << 20

var (
	ErrEmptyURL     = errors.New("empty photo url")
	ErrFetchFailed  = errors.New("failed to fetch photo")
	ErrDecodeFailed = errors.New("failed to decode photo")
)

// Progress is told how many fetches have settled.
type Progress func(done, total int)

type Fetcher struct {
	client      *http.Client
	widthPixels int
	concurrency int
	quality     int
}

func NewFetcher(widthPixels, concurrency int, timeout time.Duration) *Fetcher {
	if widthPixels <= 0 {
		widthPixels = 300
	}
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Fetcher{
		client:      &http.Client{Timeout: timeout},
		widthPixels: widthPixels,
		concurrency: concurrency,
		quality:     80,
	}
}

// FetchAll downloads every URL concurrently and returns the images in input
// order. Failed or empty entries are nil; a failure never aborts the batch.
// FetchAll returns only after every fetch has settled.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string, progress Progress) []*report.Image {
	out := make([]*report.Image, len(urls))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)
	for i, u := range urls {
		g.Go(func() error {
			defer func() {
				n := done.Add(1)
				if progress != nil {
					progress(int(n), len(urls))
				}
			}()
			if u == "" {
				return nil
			}
			img, err := f.Fetch(gctx, u)
			if err != nil {
				slog.Warn("photo skipped", "url", u, "error", err)
				return nil
			}
			out[i] = img
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Fetch downloads one photo and normalises it.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*report.Image, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return Normalize(data, f.widthPixels, f.quality)
}

// Normalize decodes a JPEG, PNG, GIF or WebP photo, applies its EXIF
// orientation, scales it to widthPixels keeping the aspect ratio and
// re-encodes it as JPEG.
func Normalize(data []byte, widthPixels, quality int) (*report.Image, error) {
	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrDecodeFailed)
	}
	width := widthPixels
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	resized := resizeImage(src, width, height)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, resized, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return &report.Image{Data: buf.Bytes(), Width: width, Height: height}, nil
}

// resizeImage resizes an image to the specified dimensions using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
