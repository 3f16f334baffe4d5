package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive
	"github.com/rs/zerolog"

	"aochelper/internal/aocerr"
	"aochelper/internal/cache"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(zerolog.Nop())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFetch_DownloadsOnceAndPrints(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("AOC_SESSION_ID", "")

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte("1721\n979\n"))
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	args := []string{
		"fetch", "--year", "2020", "--day", "1",
		"--session", "tok", "--cache-dir", dir, "--base-url", srv.URL,
		"--config", filepath.Join(dir, "none.json"),
	}
	for range 2 {
		out, err := run(t, args...)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(out).To(Equal("1721\n979\n"))
	}
	g.Expect(calls.Load()).To(Equal(int32(1)))
}

func TestFetch_RequiresDay(t *testing.T) {
	g := NewWithT(t)

	_, err := run(t, "fetch", "--year", "2020")
	g.Expect(err).To(MatchError(ContainSubstring("day")))
}

func TestStatus_ReportsCacheState(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("AOC_SESSION_ID", "")

	dir := t.TempDir()
	out, err := run(t, "status", "-y", "2015", "-d", "3", "--cache-dir", dir, "--config", filepath.Join(dir, "none.json"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("2015/day3 unlocked=true cached=false"))
	g.Expect(out).To(ContainSubstring("release=2015-12-03T00:00:00-05:00"))
}

func TestGlobals_LockedDaySkipsNetwork(t *testing.T) {
	g := NewWithT(t)

	gl := &globals{
		sessionID:  "tok",
		configPath: filepath.Join(t.TempDir(), "none.json"),
		cacheDir:   t.TempDir(),
		baseURL:    "http://127.0.0.1:1",
		log:        zerolog.Nop(),
		now:        func() time.Time { return time.Date(2015, time.November, 1, 0, 0, 0, 0, time.UTC) },
	}
	in, err := gl.inputs()
	g.Expect(err).NotTo(HaveOccurred())

	_, err = in.Get(context.Background(), cache.Key{Year: 2015, Day: 1})
	g.Expect(err).To(MatchError(aocerr.ErrPuzzleNotAvailable))
}
