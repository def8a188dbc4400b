//go:build ebiten

package main

import (
	"github.com/example/fractalexplorer/internal/ebitenview"
	"github.com/example/fractalexplorer/internal/viewport"
)

func runEbiten(c *exploreCmd, v viewport.Viewport, width, height int) error {
	g := ebitenview.New(v, width, height, c.sessionConfig(), c.engineOptions(c.workers))
	return g.Run()
}
