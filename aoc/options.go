package aoc

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"aochelper/internal/cache"
	"aochelper/internal/session"
)

// Store persists raw inputs by (year, day). Implement it to replace the
// file cache.
type Store = cache.Store

// Key identifies one puzzle input in a Store.
type Key = cache.Key

// NewFileStore returns the default on-disk Store rooted at dir.
func NewFileStore(dir string) Store { return cache.NewFileStore(dir) }

// NewMemoryStore returns an in-process Store.
func NewMemoryStore() Store { return cache.NewMemoryStore() }

// Fetcher downloads the raw input for a day. The default is an HTTP client
// for the puzzle site authenticated with the resolved session.
type Fetcher = cache.Fetcher

// FetchFunc adapts a function to Fetcher.
type FetchFunc = cache.FetchFunc

type settings struct {
	session    string
	envVar     string
	lookupEnv  session.LookupFunc
	configPath string
	cacheDir   string
	store      Store
	fetcher    Fetcher
	baseURL    string
	userAgent  string
	httpClient *http.Client
	inputFile  string
	now        func() time.Time
	log        *zerolog.Logger
}

func defaultSettings() settings {
	return settings{
		envVar:    session.DefaultEnvVar,
		lookupEnv: os.LookupEnv,
		now:       time.Now,
	}
}

// Option configures a Day.
type Option func(*settings)

// WithSession sets the session token explicitly. It wins over every other source.
func WithSession(token string) Option {
	return func(s *settings) { s.session = token }
}

// WithEnv replaces the environment lookup. Pass nil to ignore the environment.
func WithEnv(lookup func(key string) (string, bool)) Option {
	return func(s *settings) { s.lookupEnv = lookup }
}

// WithEnvVar changes the environment variable holding the session token.
func WithEnvVar(name string) Option {
	return func(s *settings) { s.envVar = name }
}

// WithConfigFile enables file-based session resolution from a JSON file
// with a "session-id" key. The file may also set cache_dir, base_url and
// user_agent; explicit options take precedence.
func WithConfigFile(path string) Option {
	return func(s *settings) { s.configPath = path }
}

// WithCacheDir sets the base directory of the file cache.
func WithCacheDir(dir string) Option {
	return func(s *settings) { s.cacheDir = dir }
}

// WithStore replaces the file cache.
func WithStore(store Store) Option {
	return func(s *settings) { s.store = store }
}

// WithFetcher replaces the network fetcher.
func WithFetcher(f Fetcher) Option {
	return func(s *settings) { s.fetcher = f }
}

// WithBaseURL points the fetcher at another site root.
func WithBaseURL(url string) Option {
	return func(s *settings) { s.baseURL = url }
}

// WithUserAgent sets the User-Agent sent with downloads.
func WithUserAgent(ua string) Option {
	return func(s *settings) { s.userAgent = ua }
}

// WithHTTPClient sets the HTTP client used for downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

// WithInputFile makes Run read path instead of the cache.
func WithInputFile(path string) Option {
	return func(s *settings) { s.inputFile = path }
}

// WithClock overrides the clock used to decide whether a day has unlocked.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithLogger sets the logger. The default logs to stderr.
func WithLogger(log zerolog.Logger) Option {
	return func(s *settings) { s.log = &log }
}
