package portfolio

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hsdev/portfolio/content"
	"github.com/hsdev/portfolio/views"
)

func (a *App) chrome(c echo.Context) views.Chrome {
	return views.Chrome{
		Site:         a.siteView(),
		Theme:        ThemeState(c),
		Accent:       a.Config.Accent,
		CSRFToken:    CsrfToken(c),
		ToggleAction: views.DefaultToggleAction,
		AssetVersion: a.assetVersion,
	}
}

func (a *App) siteView() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
		Bio:         a.Config.Bio,
	}
}

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.List(Query{Kind: content.KindPost, Limit: a.Config.LatestLimit})
	if err != nil {
		return err
	}
	projects, err := a.Cache.List(Query{Kind: content.KindProject, Limit: a.Config.ProjectsLimit})
	if err != nil {
		return err
	}
	return Render(c, views.Index(a.chrome(c), posts, projects))
}

func (a *App) handlePosts(c echo.Context) error {
	posts, err := a.Cache.List(Query{Kind: content.KindPost})
	if err != nil {
		return err
	}
	return Render(c, views.Posts(a.chrome(c), posts))
}

func (a *App) handleProjects(c echo.Context) error {
	projects, err := a.Cache.List(Query{Kind: content.KindProject, Limit: a.Config.ProjectsLimit})
	if err != nil {
		return err
	}
	return Render(c, views.Projects(a.chrome(c), projects))
}

func (a *App) handleTag(c echo.Context) error {
	tag := strings.TrimSpace(c.Param("tag"))
	if tag == "" {
		return echo.ErrNotFound
	}
	posts, err := a.Cache.List(Query{Kind: content.KindPost, Tag: tag})
	if err != nil {
		return err
	}
	return Render(c, views.Tags(a.chrome(c), tag, posts))
}

func (a *App) handleRecord(c echo.Context) error {
	rec, err := a.Cache.Get(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.chrome(c)))
		}
		return err
	}
	if rec.Kind == content.KindProject {
		return Render(c, views.Project(a.chrome(c), rec))
	}
	return Render(c, views.Post(a.chrome(c), rec))
}

func (a *App) handleSitemap(c echo.Context) error {
	recs, err := a.Cache.List(Query{})
	if err != nil {
		return err
	}
	return a.renderSitemap(c, recs)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.List(Query{Kind: content.KindPost})
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.chrome(c)))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		_ = RenderStatus(c, code, views.ServerError(a.chrome(c)))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
