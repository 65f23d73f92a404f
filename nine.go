package main

import (
	"image"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine-slice image: corners keep their size, edges and centre
// stretch to fill the box.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4][2]int
	x, y, width, height int
	targetPositions     [4][2]float64
}

// NewPanel slices a disc into a rounded rectangle tinted with c.
func NewPanel(disc *ebiten.Image, c GameColor, alpha float64) *Nine {
	w, _ := disc.Size()
	mid := w / 2
	return &Nine{
		images: disc,
		alpha:  alpha,
		R:      c.r, G: c.g, B: c.b, Scale: .3,
		positions: [4][2]int{{0, 0}, {mid, mid}, {mid + 1, mid + 1}, {w, w}},
	}
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	origin := [2]int{n.x, n.y}
	size := [2]int{width, height}
	for axis := 0; axis < 2; axis++ {
		n.targetPositions[0][axis] = float64(origin[axis])
		n.targetPositions[1][axis] = float64(origin[axis]) + n.Scale*float64(n.positions[1][axis])
		n.targetPositions[2][axis] = float64(origin[axis]+size[axis]) - n.Scale*float64(n.positions[3][axis]-n.positions[2][axis])
		n.targetPositions[3][axis] = float64(origin[axis] + size[axis])
	}
}

func (n *Nine) Draw(screen *ebiten.Image) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(
				n.positions[col][0], n.positions[row][1],
				n.positions[col+1][0], n.positions[row+1][1])
			if src.Empty() {
				continue
			}
			sx := (n.targetPositions[col+1][0] - n.targetPositions[col][0]) / float64(src.Dx())
			sy := (n.targetPositions[row+1][1] - n.targetPositions[row][1]) / float64(src.Dy())

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}
