// Package web embeds the static assets for the browser UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var Assets embed.FS

// StaticFS returns a file system for serving /static assets.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		// In practice this should not fail; fall back to empty FS.
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}

// IndexHTML returns the single-page solve UI.
func IndexHTML() ([]byte, error) {
	return Assets.ReadFile("static/index.html")
}
