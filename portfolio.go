// Package portfolio serves a personal blog and project portfolio built with
// Go, Echo, and templ.
//
// Records come from a SQLite-backed query layer, are cached in memory, and
// are rendered by the views package inside a shared layout whose light/dark
// theme is remembered per visitor in a session cookie.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// App wires together the store, cache, handlers, and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *RecordCache

	sessions     sessions.Store
	staticDir    string
	assetVersion string
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	a := &App{
		Config:    cfg,
		Echo:      e,
		staticDir: cfg.StaticDir,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init opens the store and registers middleware and routes without
// starting the listener.
func (a *App) Init() error {
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if a.Store == nil {
		store, err := NewStore(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("portfolio: init store: %w", err)
		}
		a.Store = store
	}
	a.Cache = NewRecordCache(a.Store, a.Config.CacheTTL)
	a.sessions = a.newSessionStore()

	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

// Start initializes the app and serves until the listener fails.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	return a.Serve()
}

// Serve listens on Config.Addr. Init must have been called.
func (a *App) Serve() error {
	a.Echo.Logger.Infof("portfolio: listening on %s", a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework assets (site.css, toggle.js) first, then the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	a.assetVersion = assetVersion(embeddedFS)
	embeddedHandler := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS))))
	for _, name := range embeddedAssetNames {
		e.GET("/public/"+name, embeddedHandler)
	}
	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.POST("/theme/toggle/", a.handleThemeToggle)

	e.GET("/", a.handleHome)
	e.GET("/posts/", a.handlePosts)
	e.GET("/projects/", a.handleProjects)
	e.GET("/tags/:tag/", a.handleTag)
	e.GET("/:slug/", a.handleRecord)
}

// Reload drops cached records so the next request reads the store again.
// serve calls it on SIGHUP after an import.
func (a *App) Reload() {
	if a.Cache == nil {
		return
	}
	a.Cache.Invalidate()
	a.Echo.Logger.Info("portfolio: record cache reloaded")
}

// Shutdown stops the HTTP server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Close releases the store.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
