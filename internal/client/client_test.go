package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive

	"aochelper/internal/aocerr"
	"aochelper/internal/client"
	"aochelper/internal/session"
)

func newServer(t *testing.T, status int, body string) (*client.Client, <-chan *http.Request) {
	t.Helper()
	seen := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case seen <- r.Clone(context.Background()):
		default:
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := client.New(client.Options{BaseURL: srv.URL + "/", HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c, seen
}

func TestFetchInput_SendsSessionCookie(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	c, requests := newServer(t, http.StatusOK, "1\n2\n3\n")
	b, err := c.FetchInput(context.Background(), 2015, 1, session.NewCredential("tok"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(b)).To(Equal("1\n2\n3\n"))

	seen := <-requests
	g.Expect(seen.URL.Path).To(Equal("/2015/day/1/input"))
	ck, err := seen.Cookie("session")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ck.Value).To(Equal("tok"))
	g.Expect(seen.Header.Get("User-Agent")).NotTo(BeEmpty())
}

func TestFetchInput_ClassifiesStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, aocerr.ErrPuzzleNotAvailable},
		{"bad request", http.StatusBadRequest, aocerr.ErrInvalidCredential},
		{"unauthorized", http.StatusUnauthorized, aocerr.ErrInvalidCredential},
		{"forbidden", http.StatusForbidden, aocerr.ErrInvalidCredential},
		{"server error", http.StatusInternalServerError, aocerr.ErrFetchFailed},
		{"teapot", http.StatusTeapot, aocerr.ErrFetchFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			c, _ := newServer(t, tc.status, "nope")
			_, err := c.FetchInput(context.Background(), 2016, 3, session.NewCredential("tok"))
			g.Expect(err).To(MatchError(tc.want))
		})
	}
}

func TestFetchInput_FetchErrorCarriesStatus(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	c, _ := newServer(t, http.StatusBadGateway, "")
	_, err := c.FetchInput(context.Background(), 2016, 3, session.NewCredential("tok"))

	var fe *aocerr.FetchError
	g.Expect(errors.As(err, &fe)).To(BeTrue())
	g.Expect(fe.StatusCode).To(Equal(http.StatusBadGateway))
	g.Expect(errors.Is(err, aocerr.ErrPuzzleNotAvailable)).To(BeFalse())
}

func TestFetchInput_TransportFailure(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := client.New(client.Options{BaseURL: url})
	g.Expect(err).NotTo(HaveOccurred())
	_, err = c.FetchInput(context.Background(), 2016, 3, session.NewCredential("tok"))

	var fe *aocerr.FetchError
	g.Expect(errors.As(err, &fe)).To(BeTrue())
	g.Expect(fe.StatusCode).To(BeZero())
}

func TestFetchInput_RequiresCredential(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	c, err := client.New(client.Options{})
	g.Expect(err).NotTo(HaveOccurred())
	_, err = c.FetchInput(context.Background(), 2015, 1, session.Credential{})
	g.Expect(err).To(MatchError(aocerr.ErrMissingCredential))
}

func TestNew_RejectsRelativeBaseURL(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := client.New(client.Options{BaseURL: "adventofcode"})
	g.Expect(err).To(HaveOccurred())
}

func TestAuthenticated_ReturnsResolutionError(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	c, requests := newServer(t, http.StatusOK, "ok")
	a := client.Authenticated{Client: c, Err: aocerr.ErrMissingCredential}
	_, err := a.FetchInput(context.Background(), 2015, 1)
	g.Expect(err).To(MatchError(aocerr.ErrMissingCredential))
	g.Expect(requests).To(BeEmpty())

	a = client.Authenticated{Client: c, Cred: session.NewCredential("tok")}
	b, err := a.FetchInput(context.Background(), 2015, 1)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(b)).To(Equal("ok"))
}

func TestFetchInput_RejectsOversizedBody(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	const limit = 10 * 1024 * 1024
	c, _ := newServer(t, http.StatusOK, strings.Repeat("x", limit+5))
	b, err := c.FetchInput(context.Background(), 2015, 1, session.NewCredential("tok"))
	g.Expect(b).To(BeNil())
	g.Expect(err).To(MatchError(aocerr.ErrFetchFailed))
	g.Expect(err).To(MatchError(ContainSubstring("size limit")))
}

func TestFetchInput_AcceptsBodyAtLimit(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	const limit = 10 * 1024 * 1024
	c, _ := newServer(t, http.StatusOK, strings.Repeat("x", limit))
	b, err := c.FetchInput(context.Background(), 2015, 1, session.NewCredential("tok"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(b).To(HaveLen(limit))
}

func TestFetchInput_RejectsEmptyBody(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	c, _ := newServer(t, http.StatusOK, "")
	_, err := c.FetchInput(context.Background(), 2015, 1, session.NewCredential("tok"))

	var fe *aocerr.FetchError
	g.Expect(errors.As(err, &fe)).To(BeTrue())
	g.Expect(fe.StatusCode).To(Equal(http.StatusOK))
}
