// Package web holds the HTML templates and static assets compiled into the binary
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html static
var files embed.FS

// Templates parses every page template. Each page is addressed by its file name.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.html")
}

// Static returns the files served under /static
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}

	return sub
}
