package main

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/zucenko/ladders/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type point struct {
	x, y float64
}

// cellOrigin is the top-left pixel of a grid coordinate. Row 0 sits at the
// bottom of the window.
func cellOrigin(co model.Coord) point {
	return point{
		x: float64(boardPadding + co.Col*cellSize),
		y: float64(windowHeight - boardPadding - cellSize - co.Row*cellSize),
	}
}

func cellCenter(b *model.Board, c model.Cell) point {
	o := cellOrigin(b.Coords[c])
	return point{o.x + cellSize/2, o.y + cellSize/2}
}

func loadFace(size float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

// newDiscImage draws a white anti-aliased disc; pieces tint it and the
// panels slice it into rounded corners.
func newDiscImage(radius int) (*ebiten.Image, error) {
	d := radius * 2
	img := image.NewRGBA(image.Rect(0, 0, d, d))
	r := float64(radius)
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dist := math.Hypot(float64(x)+.5-r, float64(y)+.5-r)
			cov := math.Max(0, math.Min(1, r-dist))
			a := uint8(cov * 0xff)
			img.Set(x, y, color.RGBA{a, a, a, a})
		}
	}
	return ebiten.NewImageFromImage(img, ebiten.FilterDefault)
}

func renderBoard(b *model.Board, numbers font.Face) (*ebiten.Image, error) {
	img, err := ebiten.NewImage(windowWidth, windowHeight, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	black := COLOR_BLACK.RGBA(0xff)

	for _, co := range b.Coords {
		o := cellOrigin(co)
		fill := COLOR_LIGHT_BLUE
		if (co.Col+co.Row)%2 == 1 {
			fill = COLOR_DARK_BLUE
		}
		ebitenutil.DrawRect(img, o.x, o.y, cellSize, cellSize, fill.RGBA(0xff))
		ebitenutil.DrawLine(img, o.x, o.y, o.x+cellSize, o.y, black)
		ebitenutil.DrawLine(img, o.x, o.y, o.x, o.y+cellSize, black)
	}
	edge := float64(boardPadding + b.Size*cellSize)
	ebitenutil.DrawLine(img, boardPadding, edge, edge, edge, black)
	ebitenutil.DrawLine(img, edge, boardPadding, edge, edge, black)

	for start, end := range b.Ladders {
		drawLadder(img, cellCenter(b, start), cellCenter(b, end))
	}
	for start, end := range b.Snakes {
		drawSnake(img, cellCenter(b, start), cellCenter(b, end))
	}

	for c, co := range b.Coords {
		o := cellOrigin(co)
		text.Draw(img, strconv.Itoa(int(c)), numbers, int(o.x)+3, int(o.y)+14, black)
	}
	return img, nil
}

func drawLadder(dst *ebiten.Image, from, to point) {
	clr := COLOR_LADDER.RGBA(0xff)
	dx, dy := to.x-from.x, to.y-from.y
	length := math.Hypot(dx, dy)
	nx, ny := -dy/length*6, dx/length*6
	thickLine(dst, point{from.x + nx, from.y + ny}, point{to.x + nx, to.y + ny}, 3, clr)
	thickLine(dst, point{from.x - nx, from.y - ny}, point{to.x - nx, to.y - ny}, 3, clr)
	for step := 12.0; step < length; step += 14 {
		t := step / length
		cx, cy := from.x+dx*t, from.y+dy*t
		ebitenutil.DrawLine(dst, cx-nx, cy-ny, cx+nx, cy+ny, clr)
	}
}

// drawSnake follows a cubic Bézier whose control points bow either side of
// the straight line between head and tail.
func drawSnake(dst *ebiten.Image, head, tail point) {
	clr := COLOR_SNAKE.RGBA(0xff)
	midY := (head.y + tail.y) / 2
	c1 := point{head.x + 20, midY}
	c2 := point{tail.x - 20, midY}
	prev := head
	for i := 1; i <= 100; i++ {
		t := float64(i) / 100
		u := 1 - t
		p := point{
			x: u*u*u*head.x + 3*u*u*t*c1.x + 3*u*t*t*c2.x + t*t*t*tail.x,
			y: u*u*u*head.y + 3*u*u*t*c1.y + 3*u*t*t*c2.y + t*t*t*tail.y,
		}
		thickLine(dst, prev, p, 5, clr)
		prev = p
	}
}

func thickLine(dst *ebiten.Image, from, to point, width float64, clr color.Color) {
	dx, dy := to.x-from.x, to.y-from.y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length, dx/length
	for o := -width / 2; o <= width/2; o += .5 {
		ebitenutil.DrawLine(dst, from.x+nx*o, from.y+ny*o, to.x+nx*o, to.y+ny*o, clr)
	}
}
