// Package web serves the browser entry page and its embedded assets.
package web

import (
	"crypto/sha256"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/pageza/moodbites/backend/internal/presentation"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

type asset struct {
	body        []byte
	contentType string
	etag        string
}

// Register mounts GET / and /static/* on router
func Register(router *gin.Engine) error {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	assets, err := loadAssets()
	if err != nil {
		return err
	}

	tables := presentation.AllTables()
	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{"Tables": tables})
	})
	router.GET("/static/:name", func(c *gin.Context) {
		a, ok := assets[c.Param("name")]
		if !ok {
			c.Status(http.StatusNotFound)
			return
		}
		if c.GetHeader("If-None-Match") == a.etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("Cache-Control", "public, max-age=0, no-cache")
		c.Header("ETag", a.etag)
		c.Data(http.StatusOK, a.contentType, a.body)
	})
	return nil
}

func loadAssets() (map[string]asset, error) {
	assets := make(map[string]asset)
	err := fs.WalkDir(staticFS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		body, err := staticFS.ReadFile(p)
		if err != nil {
			return err
		}
		assets[path.Base(p)] = asset{
			body:        body,
			contentType: contentType(p),
			etag:        fmt.Sprintf(`"%x"`, sha256.Sum256(body)),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load static assets: %w", err)
	}
	return assets, nil
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
