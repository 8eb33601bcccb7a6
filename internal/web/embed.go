package web

import (
	"embed"
	"io/fs"
)

// staticFiles embeds the frontend pages:
//   - index.html / register.js: registration form
//   - members.html / members.js: roster table with delete
//   - edit.html / edit.js: search-by-email and edit form
//
//go:embed static
var staticFiles embed.FS

// StaticFS returns the embedded frontend rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
