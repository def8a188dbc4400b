// Package assets embeds the browser client served by the remote viewer.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed web/index.html web/icon.svg
var embedded embed.FS

// Web returns the web client files rooted at the client directory.
func Web() fs.FS {
	sub, err := fs.Sub(embedded, "web")
	if err != nil {
		// The directory is part of the embed pattern, so Sub cannot fail.
		panic(err)
	}
	return sub
}

// Index returns the web client page.
func Index() ([]byte, error) {
	return embedded.ReadFile("web/index.html")
}
