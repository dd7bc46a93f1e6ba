// Package web provides the embedded page templates and browser assets for
// the bulletin board.
//
// The templates and scripts are compiled into the binary with Go's embed
// directive, so the server runs without external files. A templates
// directory on disk can still replace [Templates] at startup.
package web

import (
	"embed"
	"io/fs"
)

// The template filesystem structure is:
//
//	templates/
//	  layout.html   - shared "head" and "firebase_config" partials
//	  index.html    - "index" page (bulletin board)
//	  login.html    - "login" page
//
//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Templates returns the page templates rooted at the templates directory.
func Templates() fs.FS {
	return mustSub(templates, "templates")
}

// Static returns the browser assets rooted at the static directory, so
// "js/firebase_config.js" resolves to static/js/firebase_config.js.
func Static() fs.FS {
	return mustSub(static, "static")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		// dir is embedded at compile time
		panic(err)
	}
	return sub
}
