package folio

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MIMEApplicationLDJSON is the media type of JSON-LD documents.
const MIMEApplicationLDJSON = "application/ld+json; charset=utf-8"

// RenderJSONLD writes an already encoded JSON-LD document with status 200.
func RenderJSONLD(c echo.Context, body string) error {
	return RenderJSONLDStatus(c, http.StatusOK, body)
}

// RenderJSONLDStatus writes an already encoded JSON-LD document.
func RenderJSONLDStatus(c echo.Context, code int, body string) error {
	return c.Blob(code, MIMEApplicationLDJSON, []byte(body))
}
