package codeforces

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okBody = `{
  "status": "OK",
  "result": [
    {"id": 3, "contestId": 1350, "creationTimeSeconds": 1700000000, "verdict": "OK",
     "problem": {"contestId": 1350, "index": "A", "name": "Orac and Factors", "rating": 900, "tags": ["math"]}},
    {"id": 2, "contestId": 1350, "creationTimeSeconds": 1699999000, "verdict": "WRONG_ANSWER",
     "problem": {"contestId": 1350, "index": "B", "name": "Orac and Models", "tags": []}}
  ]
}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	c, err := NewClient(server.URL, time.Second)
	require.NoError(t, err)
	return c
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "codeforces.com", u.Host)

	u, err = parseBaseURL("mirror.example.com:8080/path?x=1#frag")
	require.NoError(t, err)
	assert.Equal(t, "mirror.example.com:8080", u.Host)
	assert.Empty(t, u.Path)
	assert.Empty(t, u.RawQuery)
	assert.Empty(t, u.Fragment)
}

func TestUserStatus_EncodesQueryAndDecodes(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	var gotUA string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okBody))
	})

	subs, err := c.UserStatus(context.Background(), " x ", 1, 10000)
	require.NoError(t, err)

	assert.Equal(t, "/api/user.status", gotPath)
	assert.Equal(t, "x", gotQuery.Get("handle"))
	assert.Equal(t, "1", gotQuery.Get("from"))
	assert.Equal(t, "10000", gotQuery.Get("count"))
	assert.Equal(t, defaultUserAgent, gotUA)

	require.Len(t, subs, 2)
	assert.Equal(t, 1350, subs[0].ContestID)
	assert.Equal(t, "A", subs[0].Index)
	assert.Equal(t, domain.VerdictAccepted, subs[0].Verdict)
	require.NotNil(t, subs[0].Rating)
	assert.Equal(t, 900, *subs[0].Rating)
	assert.Equal(t, []string{"math"}, subs[0].Tags)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), subs[0].CreatedAt)
	assert.Nil(t, subs[1].Rating)
}

func TestUserStatus_EmptyHandleNoRequest(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.UserStatus(context.Background(), "   ", 1, 10)
	assert.ErrorIs(t, err, ErrEmptyHandle)
	assert.False(t, called)
}

func TestUserStatus_FailedEnvelopeCarriesComment(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"FAILED","comment":"handle: User with handle nobody not found"}`))
	})

	_, err := c.UserStatus(context.Background(), "nobody", 1, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusBadRequest, netErr.StatusCode)
	assert.Contains(t, netErr.Comment, "not found")
	assert.Contains(t, err.Error(), "not found")
}

func TestUserStatus_FailedStatusWith200(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"FAILED","comment":"Call limit exceeded"}`))
	})

	_, err := c.UserStatus(context.Background(), "x", 1, 10)
	require.ErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "Call limit exceeded")
}

func TestUserStatus_ServerErrorWithoutJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.UserStatus(context.Background(), "x", 1, 10)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusBadGateway, netErr.StatusCode)
	assert.Empty(t, netErr.Comment)
}

func TestUserStatus_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","result":`))
	})

	_, err := c.UserStatus(context.Background(), "x", 1, 10)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestUserStatus_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c, err := NewClient(server.URL, time.Second)
	require.NoError(t, err)
	server.Close()

	_, err = c.UserStatus(context.Background(), "x", 1, 10)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestSubmissionToDomain_FallsBackToOuterContest(t *testing.T) {
	s := Submission{ContestID: 4, Problem: Problem{Index: "C"}, Verdict: "OK"}
	assert.Equal(t, 4, s.ToDomain().ContestID)
}
