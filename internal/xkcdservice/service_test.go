package xkcdservice

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avion-bot/avion/pkg/errorspkg"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, latestNum int) *Service {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/info.0.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"num":%d,"safe_title":"Latest","alt":"alt text","img":"https://imgs.xkcd.com/latest.png"}`, latestNum)
	})
	mux.HandleFunc("/614/info.0.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"num":614,"safe_title":"Woodpecker","alt":"If you don't have an extension cord","img":"https://imgs.xkcd.com/comics/woodpecker.png"}`)
	})
	mux.HandleFunc("/1/info.0.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"num":1,"safe_title":"Barrel - Part 1","alt":"Don't we all.","img":"https://imgs.xkcd.com/comics/barrel_cropped_(1).jpg"}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return NewWithBaseURL(server.URL)
}

func TestLatest(t *testing.T) {
	svc := newTestServer(t, 2901)

	comic, err := svc.Latest(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2901, comic.Num)
	require.Equal(t, "Latest", comic.SafeTitle)
	require.Equal(t, "https://imgs.xkcd.com/latest.png", comic.ImageURL)
}

func TestByNum(t *testing.T) {
	svc := newTestServer(t, 2901)

	comic, err := svc.ByNum(context.Background(), 614)
	require.NoError(t, err)
	require.Equal(t, 614, comic.Num)
	require.Equal(t, "Woodpecker", comic.SafeTitle)
	require.Equal(t, "If you don't have an extension cord", comic.Alt)
}

func TestByNumNotFound(t *testing.T) {
	svc := newTestServer(t, 2901)

	_, err := svc.ByNum(context.Background(), 999999)
	require.ErrorIs(t, err, ErrComicNotFound)
}

func TestRandomStaysInRange(t *testing.T) {
	// With a single published comic, random can only pick it.
	svc := newTestServer(t, 1)

	for n := 0; n < 5; n++ {
		comic, err := svc.Random(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, comic.Num)
	}
}

func TestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	svc := NewWithBaseURL(server.URL)

	_, err := svc.Latest(context.Background())
	require.ErrorIs(t, err, errorspkg.ErrInternal)
}
