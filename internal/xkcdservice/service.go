// Package xkcdservice fetches comics from the xkcd JSON API.
package xkcdservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/avion-bot/avion/pkg/errorspkg"
	"github.com/avion-bot/avion/pkg/randompkg"
)

// ErrComicNotFound indicates that the requested comic number does not exist.
var ErrComicNotFound = errors.New("comic not found")

const defaultBaseURL = "https://xkcd.com"

// Comic is one xkcd comic as served by the info.0.json endpoint.
type Comic struct {
	Num       int    `json:"num"`
	SafeTitle string `json:"safe_title"`
	Alt       string `json:"alt"`
	ImageURL  string `json:"img"`
}

// Service fetches comics over HTTP.
type Service struct {
	client  *http.Client
	baseURL string
}

// New returns an xkcd service with a sensible request timeout.
func New() *Service {
	return &Service{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
	}
}

// NewWithBaseURL returns an xkcd service pointed at the given base URL.
func NewWithBaseURL(baseURL string) *Service {
	return &Service{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

// Latest returns today's comic.
func (s *Service) Latest(ctx context.Context) (Comic, error) {
	return s.fetch(ctx, s.baseURL+"/info.0.json")
}

// ByNum returns the comic with the given number.
func (s *Service) ByNum(ctx context.Context, num int) (Comic, error) {
	return s.fetch(ctx, fmt.Sprintf("%s/%d/info.0.json", s.baseURL, num))
}

// Random returns a uniformly random comic between 1 and the latest.
func (s *Service) Random(ctx context.Context) (Comic, error) {
	latest, err := s.Latest(ctx)
	if err != nil {
		return Comic{}, err
	}

	num := int(randompkg.Intn(latest.Num)) + 1

	return s.ByNum(ctx, num)
}

func (s *Service) fetch(ctx context.Context, url string) (Comic, error) {
	l := zerolog.Ctx(ctx)

	var comic Comic

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return comic, errorspkg.ErrInternal
	}

	res, err := s.client.Do(req)
	if err != nil {
		l.Error().Err(err).Str("url", url).Send()
		return comic, errorspkg.ErrInternal
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return comic, ErrComicNotFound
	}

	if res.StatusCode != http.StatusOK {
		l.Error().Int("status", res.StatusCode).Str("url", url).Msg("unexpected xkcd response")
		return comic, errorspkg.ErrInternal
	}

	if err := json.NewDecoder(res.Body).Decode(&comic); err != nil {
		l.Error().Err(err).Send()
		return comic, errorspkg.ErrInternal
	}

	return comic, nil
}
