// Package hxpageecho provides Echo framework integration for hxpage documents.
//
//	e := echo.New()
//	page := hxpage.New("Home").Stylesheet("/app.css")
//	e.GET("/", hxpageecho.Handler(page))
//
// Or render from an existing handler:
//
//	func home(c echo.Context) error {
//	    return hxpageecho.Render(c, page.Body(body))
//	}
package hxpageecho

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pthm/hxpage"
)

// Render writes a document to the Echo response with status 200.
func Render(c echo.Context, doc hxpage.Document) error {
	return RenderStatus(c, http.StatusOK, doc)
}

// RenderStatus writes a document to the Echo response with the given status.
// HEAD requests get headers only.
func RenderStatus(c echo.Context, code int, doc hxpage.Document) error {
	c.Response().Header().Set(echo.HeaderContentType, hxpage.ContentType)
	c.Response().WriteHeader(code)
	if c.Request().Method == http.MethodHead {
		return nil
	}
	return doc.Fragment().Render(c.Request().Context(), c.Response())
}

// Handler returns an Echo handler that serves doc for every request.
func Handler(doc hxpage.Document) echo.HandlerFunc {
	frag := doc.Fragment()
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderContentType, hxpage.ContentType)
		c.Response().WriteHeader(http.StatusOK)
		if c.Request().Method == http.MethodHead {
			return nil
		}
		return frag.Render(c.Request().Context(), c.Response())
	}
}
