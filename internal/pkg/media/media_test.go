package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestNormalize_KeepsAspectRatio(t *testing.T) {
	img, err := Normalize(pngBytes(t, 400, 200), 100, 80)

	require.NoError(t, err)
	assert.Equal(t, 100, img.Width)
	assert.Equal(t, 50, img.Height)
	assert.Equal(t, []byte{0xFF, 0xD8}, img.Data[:2], "output is JPEG")
}

func TestNormalize_RejectsGarbage(t *testing.T) {
	_, err := Normalize([]byte("not an image"), 100, 80)
	assert.ErrorIs(t, err, ErrDecodeFailed)
}

func TestFetchAll_FailuresBecomeNil(t *testing.T) {
	photo := pngBytes(t, 60, 80)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			_, _ = w.Write(photo)
		case "/broken.png":
			_, _ = w.Write([]byte("<html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewFetcher(30, 2, 5*time.Second)
	var (
		mu    sync.Mutex
		calls []int
	)
	urls := []string{srv.URL + "/ok.png", "", srv.URL + "/missing.png", srv.URL + "/broken.png", srv.URL + "/ok.png"}

	imgs := f.FetchAll(context.Background(), urls, func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, len(urls), total)
		calls = append(calls, done)
	})

	require.Len(t, imgs, len(urls))
	assert.NotNil(t, imgs[0])
	assert.Nil(t, imgs[1])
	assert.Nil(t, imgs[2])
	assert.Nil(t, imgs[3])
	require.NotNil(t, imgs[4])
	assert.Equal(t, 30, imgs[4].Width)
	assert.Equal(t, 40, imgs[4].Height)
	assert.Len(t, calls, len(urls))
}

func TestFetch_EmptyURL(t *testing.T) {
	_, err := NewFetcher(0, 0, time.Second).Fetch(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyURL)
}
