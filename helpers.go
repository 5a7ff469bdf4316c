package hxpage

import (
	"io"
	"net/http"
)

// ContentType is the Content-Type header value used for rendered documents.
const ContentType = "text/html; charset=utf-8"

// Serve writes a rendered document to the HTTP response.
//
// Sets Content-Type to text/html and writes the document body. HEAD requests
// get headers only.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxpage.Serve(w, r, page)
//	}
func Serve(w http.ResponseWriter, r *http.Request, doc Document) error {
	w.Header().Set("Content-Type", ContentType)
	if r != nil && r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return nil
	}
	_, err := io.WriteString(w, doc.Render())
	return err
}

// Handler returns an http.Handler that serves doc for every request.
//
// The document is rendered once, when Handler is called. Since Document is a
// value, later changes made from the same base don't affect the handler.
//
//	http.Handle("/", hxpage.Handler(page))
func Handler(doc Document) http.Handler {
	rendered := doc.Render()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", ContentType)
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}
		io.WriteString(w, rendered)
	})
}
