// Package engine picks the renderer for a viewport and spreads escape-time
// work over a pool of goroutines.
package engine

import (
	"image"
	"image/draw"
	"runtime"
	"sync"

	"github.com/example/fractalexplorer/internal/escape"
	"github.com/example/fractalexplorer/internal/koch"
	"github.com/example/fractalexplorer/internal/viewport"
)

// DefaultTileSize is the side of the square tiles handed to workers.
const DefaultTileSize = 64

// Options tunes parallel rendering. The zero value renders on the calling
// goroutine.
type Options struct {
	Workers  int
	TileSize int
}

// DefaultOptions uses one worker per CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU(), TileSize: DefaultTileSize}
}

// Render produces a width x height buffer for v. Koch views are drawn by the
// curve rasteriser and never reach the escape-time code.
func Render(v viewport.Viewport, width, height int, opts Options) *image.RGBA {
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	if v.Variant == viewport.Koch {
		return koch.Render(v, width, height)
	}
	if opts.Workers <= 1 {
		return escape.Render(v, width, height)
	}
	return renderTiles(v, width, height, opts)
}

func renderTiles(v viewport.Viewport, width, height int, opts Options) *image.RGBA {
	size := opts.TileSize
	if size <= 0 {
		size = DefaultTileSize
	}
	full := image.Rect(0, 0, width, height)
	tiles := SplitRect(full, size, size)

	img := image.NewRGBA(full)
	jobs := make(chan image.Rectangle)
	var wg sync.WaitGroup
	for i := 0; i < min(opts.Workers, len(tiles)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range jobs {
				part := escape.RenderTile(v, tile, width, height)
				// Tiles never overlap, so workers write disjoint pixels.
				draw.Draw(img, tile, part, tile.Min, draw.Src)
			}
		}()
	}
	for _, t := range tiles {
		jobs <- t
	}
	close(jobs)
	wg.Wait()
	return img
}

// SplitRect cuts r into tiles of at most tileW x tileH, row by row. Edge
// tiles are trimmed to stay inside r.
func SplitRect(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}
	w := r.Dx()
	h := r.Dy()
	var tiles []image.Rectangle
	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)
		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)
			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}
	return tiles
}
