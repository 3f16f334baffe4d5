package aoc

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"aochelper/internal/aocerr"
	"aochelper/internal/cache"
	"aochelper/internal/client"
	"aochelper/internal/config"
	"aochelper/internal/logging"
	"aochelper/internal/session"
)

// Day runs puzzle parts for one (year, day).
type Day struct {
	year      int
	day       int
	inputs    *cache.Inputs
	inputFile string
	log       zerolog.Logger
	setupErr  error
}

// New binds year and day to an input cache. The session is resolved here,
// once; failures surface from Run only when an input must be downloaded.
func New(year, day int, opts ...Option) *Day {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	d := &Day{year: year, day: day, inputFile: s.inputFile}
	if s.log != nil {
		d.log = *s.log
	} else {
		d.log = logging.Default()
	}

	var cfg *config.Config
	if s.configPath != "" {
		loaded, err := config.Load(s.configPath)
		if err != nil {
			d.setupErr = err
			loaded = config.Defaults()
		}
		cfg = &loaded
		if s.cacheDir == "" {
			s.cacheDir = cfg.CacheDir
		}
		if s.baseURL == "" {
			s.baseURL = cfg.BaseURL
		}
		if s.userAgent == "" {
			s.userAgent = cfg.UserAgent
		}
	}
	if s.cacheDir == "" {
		s.cacheDir = config.DefaultCacheDir
	}

	store := s.store
	if store == nil {
		store = cache.NewFileStore(s.cacheDir)
	}

	fetcher := s.fetcher
	if fetcher == nil {
		fetcher = newSiteFetcher(s, cfg)
	}

	d.inputs = cache.NewInputs(store, fetcher,
		cache.WithClock(s.now),
		cache.WithLogger(d.log),
	)
	return d
}

func newSiteFetcher(s settings, cfg *config.Config) Fetcher {
	cred, credErr := session.Resolver{
		Override:  s.session,
		EnvVar:    s.envVar,
		LookupEnv: s.lookupEnv,
		Config:    cfg,
	}.Resolve()

	c, err := client.New(client.Options{
		BaseURL:    s.baseURL,
		UserAgent:  s.userAgent,
		HTTPClient: s.httpClient,
	})
	if err != nil {
		return client.Authenticated{Err: err}
	}
	return client.Authenticated{Client: c, Cred: cred, Err: credErr}
}

// Year returns the puzzle year.
func (d *Day) Year() int { return d.year }

// Day returns the day of December.
func (d *Day) Day() int { return d.day }

// Test runs the solver on each example in order and compares the displayed
// answer with the expected text. It never touches the cache. Solver panics
// are not recovered.
func (d *Day) Test(p Solvable) Report {
	r := Report{Year: d.year, Day: d.day, Part: p.Part()}
	examples := p.Examples()
	if len(examples) == 0 {
		d.log.Warn().Int("year", d.year).Int("day", d.day).Int("part", p.Part()).Msg("no examples to test")
		return r
	}

	r.Results = make([]Result, 0, len(examples))
	for i, ex := range examples {
		actual := p.Solve(ex.Input)
		res := Result{
			Index:    i + 1,
			Input:    ex.Input,
			Expected: ex.Expected,
			Actual:   actual,
			Passed:   actual == ex.Expected,
		}
		r.Results = append(r.Results, res)

		lvl := zerolog.InfoLevel
		if !res.Passed {
			lvl = zerolog.WarnLevel
		}
		d.log.WithLevel(lvl).Int("year", d.year).Int("day", d.day).Int("part", p.Part()).
			Int("example", res.Index).Str("actual", actual).Str("expected", res.Expected).
			Bool("passed", res.Passed).Msg("example checked")
	}
	return r
}

// Run solves p against the day's input, downloading and caching it on first
// use. The solver sees the input with surrounding whitespace trimmed. Input
// errors are returned unchanged; solver panics are not recovered.
func (d *Day) Run(ctx context.Context, p Solvable) (string, error) {
	text, err := d.input(ctx)
	if err != nil {
		return "", err
	}

	start := time.Now()
	answer := p.Solve(strings.TrimSpace(text))
	elapsed := time.Since(start)

	d.log.Info().Int("year", d.year).Int("day", d.day).Int("part", p.Part()).
		Str("answer", answer).Dur("elapsed", elapsed).
		Msg("finished in " + elapsed.Round(time.Microsecond).String())
	return answer, nil
}

func (d *Day) input(ctx context.Context) (string, error) {
	if d.inputFile != "" {
		b, err := os.ReadFile(d.inputFile)
		if err != nil {
			return "", aocerr.CacheIO("read", d.inputFile, err)
		}
		return string(b), nil
	}
	if d.setupErr != nil {
		return "", d.setupErr
	}
	in, err := d.inputs.Get(ctx, cache.Key{Year: d.year, Day: d.day})
	if err != nil {
		return "", err
	}
	return in.Text, nil
}
