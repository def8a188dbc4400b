//go:build !ebiten

package main

import (
	"errors"

	"github.com/example/fractalexplorer/internal/viewport"
)

var errNoEbiten = errors.New("this build has no ebiten backend; rebuild with -tags ebiten")

func runEbiten(c *exploreCmd, v viewport.Viewport, width, height int) error {
	return errNoEbiten
}
