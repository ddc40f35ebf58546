package folio

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/healthz", handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(a.promRegistry, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	api.GET("/config", a.handleConfig)
	api.GET("/site", a.handleSite)
	api.GET("/locale", a.handleLocale)
	api.GET("/logo", a.handleLogo)
	api.GET("/socials", a.handleSocials)
	api.GET("/socials/:name", a.handleSocial)
	api.GET("/jsonld", a.handleJSONLD)
	api.GET("/pagination", a.handlePagination)
	api.GET("/schedule", a.handleSchedule)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleConfig(c echo.Context) error {
	return a.cachedJSON(c, a.Registry().Config())
}

func (a *App) handleSite(c echo.Context) error {
	return a.cachedJSON(c, a.Registry().Site())
}

// localeResponse carries both the configured values (sentinels included)
// and what a renderer should actually use.
type localeResponse struct {
	Lang             string   `json:"lang"`
	LangTag          []string `json:"langTag"`
	EffectiveLang    string   `json:"effectiveLang"`
	EffectiveLangTag []string `json:"effectiveLangTag"`
	Negotiated       string   `json:"negotiated"`
}

func (a *App) handleLocale(c echo.Context) error {
	r := a.Registry()
	loc := r.Locale()
	if loc.LangTag == nil {
		loc.LangTag = []string{}
	}
	negotiated := r.MatchLanguage(c.Request().Header.Get("Accept-Language"))
	c.Response().Header().Add(echo.HeaderVary, "Accept-Language")
	return a.cachedJSON(c, localeResponse{
		Lang:             loc.Lang,
		LangTag:          loc.LangTag,
		EffectiveLang:    loc.EffectiveLang(),
		EffectiveLangTag: r.LangTags(),
		Negotiated:       negotiated,
	}, negotiated)
}

func (a *App) handleLogo(c echo.Context) error {
	return a.cachedJSON(c, a.Registry().Logo())
}

func (a *App) handleSocials(c echo.Context) error {
	r := a.Registry()
	links := r.ActiveSocials()
	if all, _ := strconv.ParseBool(c.QueryParam("all")); all {
		links = r.Socials()
	}
	return a.cachedJSON(c, links)
}

func (a *App) handleSocial(c echo.Context) error {
	name, ok := ParseSocialName(c.Param("name"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown platform")
	}
	link, err := a.Registry().Social(name)
	if err != nil {
		if errors.Is(err, ErrUnknownSocial) {
			return echo.NewHTTPError(http.StatusNotFound, "social link not configured")
		}
		return err
	}
	return a.cachedJSON(c, link)
}

func (a *App) handleJSONLD(c echo.Context) error {
	if a.notModified(c) {
		return c.NoContent(http.StatusNotModified)
	}
	return RenderJSONLD(c, a.Registry().WebsiteJSONLD())
}

type paginationResponse struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	Start      int  `json:"start"` // index of the first item on the page
	End        int  `json:"end"`   // exclusive
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

// handlePagination answers "which items go on page N of a listing of
// total items" using the configured postPerPage.
func (a *App) handlePagination(c echo.Context) error {
	total, err := strconv.Atoi(c.QueryParam("total"))
	if err != nil || total < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "total must be a non-negative integer")
	}
	number := 1
	if v := c.QueryParam("page"); v != "" {
		if number, err = strconv.Atoi(v); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "page must be an integer")
		}
	}

	site := a.Registry().Site()
	start, end, err := site.PageBounds(total, number)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	pages := site.PageCount(total)
	return a.cachedJSON(c, paginationResponse{
		Page:       number,
		TotalPages: pages,
		Start:      start,
		End:        end,
		HasPrev:    number > 1,
		HasNext:    number < pages,
	})
}

type scheduleResponse struct {
	PubDatetime time.Time `json:"pubDatetime"`
	Scheduled   bool      `json:"scheduled"`
	VisibleFrom time.Time `json:"visibleFrom"` // pubDatetime minus the margin
}

func (a *App) handleSchedule(c echo.Context) error {
	pub, err := time.Parse(time.RFC3339, c.QueryParam("pub"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "pub must be an RFC 3339 timestamp")
	}
	now := time.Now()
	if v := c.QueryParam("now"); v != "" {
		if now, err = time.Parse(time.RFC3339, v); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "now must be an RFC 3339 timestamp")
		}
	}
	site := a.Registry().Site()
	return c.JSON(http.StatusOK, scheduleResponse{
		PubDatetime: pub,
		Scheduled:   site.IsScheduled(pub, now),
		VisibleFrom: pub.Add(-site.ScheduledMargin()),
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}
	if code >= 500 {
		a.logger.Error().Err(err).Str("event", "request.error").Str("uri", c.Request().RequestURI).Msg("server error")
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, errorResponse{Error: msg})
}
