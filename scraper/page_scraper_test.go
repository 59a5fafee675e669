package scraper

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const galleryPage = `<!doctype html>
<html><body>
  <header><img src="/static/logo.png" alt="logo"></header>
  <section class="gallery">
    <img src="photos/campus%20front.jpg">
    <img data-src="https://cdn.example.com/lazy/award-1.jpg">
    <img src="data:image/png;base64,iVBORw0KGgo=">
    <img src="/static/logo.png">
    <img src="">
  </section>
</body></html>`

func TestDiscoverImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, galleryPage)
	}))
	defer srv.Close()

	entries, err := DiscoverImages(srv.Client(), "", srv.URL+"/school/index.html", "")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "logo.png", entries[0].Filename)
	assert.Equal(t, srv.URL+"/static/logo.png", entries[0].SourceURL)
	assert.Equal(t, "campus front.jpg", entries[1].Filename)
	assert.Equal(t, srv.URL+"/school/photos/campus%20front.jpg", entries[1].SourceURL)
	assert.Equal(t, "award-1.jpg", entries[2].Filename)
	assert.Equal(t, "https://cdn.example.com/lazy/award-1.jpg", entries[2].SourceURL)
}

func TestDiscoverImagesSelector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, galleryPage)
	}))
	defer srv.Close()

	entries, err := DiscoverImages(srv.Client(), "", srv.URL, "header img")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "logo.png", entries[0].Filename)
}

func TestDiscoverImagesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := DiscoverImages(srv.Client(), "", srv.URL, "img")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadStatus))
}

func TestDiscoverImagesAcceptsAny2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		io.WriteString(w, galleryPage)
	}))
	defer srv.Close()

	entries, err := DiscoverImages(srv.Client(), "", srv.URL, "header img")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "logo.png", entries[0].Filename)
}
