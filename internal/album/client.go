package album

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/vicanso/go-axios"

	"github.com/ytget/album-player/internal/model"
)

// Remote source constants
const (
	DefaultBaseURL = "https://raw.githubusercontent.com/netology-code/andad-homeworks/master/09_multimedia/data/"
	AlbumDocument  = "album.json"

	DefaultTimeout = 15 * time.Second
)

var (
	// ErrLoadFailed is returned for any album fetch failure: transport,
	// HTTP status or malformed document.
	ErrLoadFailed = errors.New("album load failed")

	// ErrStreamFailed is returned when track audio cannot be fetched.
	ErrStreamFailed = errors.New("track stream failed")
)

// Client fetches the album document and track streams
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	ins        *axios.Instance
	logger     *log.Entry
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the http.Client used for all requests
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.timeout = d
		}
	}
}

// NewClient creates an album client for the given base URL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: NormalizeBaseURL(baseURL),
		timeout: DefaultTimeout,
		logger: log.WithFields(log.Fields{
			"module": "album",
		}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}

	c.ins = axios.NewInstance(&axios.InstanceConfig{
		Client:  c.httpClient,
		Timeout: c.timeout,
		Headers: http.Header{
			"Accept": {"application/json"},
		},
	})
	return c
}

// AlbumURL returns the address of the album document
func (c *Client) AlbumURL() string {
	return c.baseURL + AlbumDocument
}

// TrackURL returns the stream address of a track
func (c *Client) TrackURL(track model.Track) string {
	return c.baseURL + track.File
}

// TrackURLs returns stream addresses for all tracks in album order
func (c *Client) TrackURLs(album *model.Album) []string {
	if album == nil {
		return nil
	}
	return lo.Map(album.Tracks, func(t model.Track, _ int) string {
		return c.TrackURL(t)
	})
}

// FetchAlbum performs a single GET of the album document. Any failure is
// reported as ErrLoadFailed; no partial album is ever returned.
func (c *Client) FetchAlbum(ctx context.Context) (*model.Album, error) {
	target := c.AlbumURL()
	c.logger.Debugf("fetching album from %s", target)

	data, err := c.get(ctx, target)
	if err != nil {
		c.logger.WithError(err).Warn("album request failed")
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	var album *model.Album
	if err := json.Unmarshal(data, &album); err != nil {
		c.logger.WithError(err).Warn("album document is malformed")
		return nil, fmt.Errorf("%w: decode: %v", ErrLoadFailed, err)
	}
	if album == nil {
		c.logger.Warn("album document is empty")
		return nil, fmt.Errorf("%w: empty document", ErrLoadFailed)
	}

	c.logger.Infof("album %q loaded with %d tracks", album.Title, album.TrackCount())
	return album, nil
}

// FetchStream downloads the audio bytes of a track
func (c *Client) FetchStream(ctx context.Context, url string) ([]byte, error) {
	c.logger.Debugf("fetching stream %s", url)

	data, err := c.get(ctx, url)
	if err != nil {
		c.logger.WithError(err).Warnf("stream request failed for %s", url)
		return nil, fmt.Errorf("%w: %v", ErrStreamFailed, err)
	}
	return data, nil
}

// get issues a GET and returns the body of a 2xx response
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := c.ins.Request(&axios.Config{
		Method:  http.MethodGet,
		URL:     url,
		Context: ctx,
	})
	if err != nil {
		return nil, err
	}
	if resp.Status < http.StatusOK || resp.Status >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d", resp.Status)
	}
	return resp.Data, nil
}

// NormalizeBaseURL trims blanks and guarantees a trailing slash
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL
}
