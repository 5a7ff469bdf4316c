package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pthm/hxpage"
)

// base is shared by every page; each handler extends its own copy.
var base = hxpage.New("hxpage example").
	Stylesheet("/static/app.css").
	Icon("/favicon.ico")

func main() {
	mux := http.NewServeMux()

	// Static page, rendered once.
	mux.Handle("/about", hxpage.Handler(base.Body(hxpage.BodyElement(nil,
		hxpage.Element("h1", nil, hxpage.Text("About")),
		hxpage.Element("p", nil, hxpage.Text("Pages share one boilerplate skeleton.")),
	))))

	// Per-request page.
	mux.HandleFunc("/hello/{name}", handleHello)

	// Served as a templ component.
	mux.Handle("/", templ.Handler(base.Fragment()))

	addr := ":8080"
	fmt.Printf("Starting server at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}

func handleHello(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	greeting, err := hxpage.FromComponent(r.Context(), greetingComponent(name))
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	page := base.
		Link(hxpage.Raw(`<script src="/static/app.js" defer></script>`)).
		Body(hxpage.BodyElement([]hxpage.Attr{{Name: "class", Value: "hello"}}, greeting))

	if err := hxpage.Serve(w, r, page); err != nil {
		log.Printf("serve: %v", err)
	}
}

// greetingComponent stands in for a templ-generated component.
func greetingComponent(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>Hello, "+templ.EscapeString(name)+"!</p>")
		return err
	})
}
