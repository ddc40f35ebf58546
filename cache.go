package folio

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
)

// etagCache holds the entity tag of the last registry it saw. A reload
// swaps the registry pointer, which invalidates the tag.
type etagCache struct {
	mu   sync.RWMutex
	reg  *Registry
	etag string
}

// get returns the tag for r, computing it on first use. It tries a read lock
// first and only takes the write lock when r is new.
func (c *etagCache) get(r *Registry) string {
	c.mu.RLock()
	if c.reg == r {
		etag := c.etag
		c.mu.RUnlock()
		return etag
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reg != r {
		c.etag = registryETag(r)
		c.reg = r
	}
	return c.etag
}

func registryETag(r *Registry) string {
	b, err := json.Marshal(r.cfg)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return `"` + hex.EncodeToString(sum[:12]) + `"`
}

// variantETag folds request inputs the body depends on (such as the
// negotiated language) into a registry tag.
func variantETag(etag string, inputs ...string) string {
	if etag == "" || len(inputs) == 0 {
		return etag
	}
	h := sha256.New()
	h.Write([]byte(etag))
	for _, in := range inputs {
		h.Write([]byte{0})
		h.Write([]byte(in))
	}
	return `"` + hex.EncodeToString(h.Sum(nil)[:12]) + `"`
}

// notModified tags a response the handler is about to send and reports
// whether the client already holds it. Call it only once the request has
// been validated and the representation exists.
func (a *App) notModified(c echo.Context, inputs ...string) bool {
	etag := variantETag(a.etags.get(a.Registry()), inputs...)
	if etag == "" {
		return false
	}
	c.Response().Header().Set("ETag", etag)
	return etagMatches(c.Request().Header.Get("If-None-Match"), etag)
}

// cachedJSON sends v as JSON unless the client's copy is current.
func (a *App) cachedJSON(c echo.Context, v any, inputs ...string) error {
	if a.notModified(c, inputs...) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSON(http.StatusOK, v)
}

// etagMatches reports whether an If-None-Match header value matches etag.
func etagMatches(header, etag string) bool {
	if header == "" || etag == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
