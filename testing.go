package hxpage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
)

// TestResult holds the result of serving a document for testing.
//
// Provides convenience methods for asserting on HTML content, element order,
// headers and status codes.
type TestResult struct {
	HTML       string
	StatusCode int
	Headers    http.Header
}

// TestServe serves a document through Handler and returns testable output.
//
//	result := hxpage.TestServe(page)
//	if !result.HTMLContains(`<title>Docs</title>`) {
//	    t.Fatal("missing title")
//	}
func TestServe(doc Document) *TestResult {
	return TestHandler(Handler(doc), http.MethodGet, "/")
}

// RequestOption modifies the request sent by TestHandler.
type RequestOption func(*http.Request) *http.Request

// WithRequestHeader sets a request header.
func WithRequestHeader(key, value string) RequestOption {
	return func(r *http.Request) *http.Request {
		r.Header.Set(key, value)
		return r
	}
}

// WithRequestContext replaces the request context.
func WithRequestContext(ctx context.Context) RequestOption {
	return func(r *http.Request) *http.Request {
		return r.WithContext(ctx)
	}
}

// TestHandler runs a single request against any handler that serves documents,
// such as one built around Serve. Options apply in order.
//
//	result := hxpage.TestHandler(h, http.MethodGet, "/",
//	    hxpage.WithRequestHeader("Accept", "text/html"))
func TestHandler(h http.Handler, method, url string, opts ...RequestOption) *TestResult {
	req := httptest.NewRequest(method, url, nil)
	for _, opt := range opts {
		req = opt(req)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// HTMLInOrder checks that every substring appears, each after the previous one.
//
//	result.HTMLInOrder(`<title>`, `href="/app.css"`, `href="/favicon.ico"`, `</head>`)
func (r *TestResult) HTMLInOrder(substrs ...string) bool {
	rest := r.HTML
	for _, s := range substrs {
		i := strings.Index(rest, s)
		if i == -1 {
			return false
		}
		rest = rest[i+len(s):]
	}
	return true
}

// CountTag returns how many times an opening tag with the given name appears.
func (r *TestResult) CountTag(name string) int {
	return strings.Count(r.HTML, "<"+name+">") + strings.Count(r.HTML, "<"+name+" ")
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set with the given value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// IsHTML checks that the response was served with the HTML content type.
func (r *TestResult) IsHTML() bool {
	return r.HasHeader("Content-Type", ContentType)
}
