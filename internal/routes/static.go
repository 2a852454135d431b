package routes

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

// runStaticRouter serves the front-end from dir, with / mapped to index.html.
// API routes are registered first and take precedence over files. Dotfiles
// (.env, .git/...) are never served.
func runStaticRouter(e *echo.Echo, dir string) {
	if dir == "" {
		dir = "."
	}
	files := echo.StaticDirectoryHandler(echo.MustSubFS(e.Filesystem, dir), false)
	e.GET("/*", hideDotfiles(files))
	e.File("/", filepath.Join(dir, "index.html"))
}

func hideDotfiles(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := url.PathUnescape(c.Param("*"))
		if err != nil {
			return echo.ErrNotFound
		}
		for _, segment := range strings.Split(filepath.ToSlash(p), "/") {
			if strings.HasPrefix(segment, ".") {
				return echo.ErrNotFound
			}
		}
		return next(c)
	}
}
