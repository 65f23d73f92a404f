package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/ladders/engine"
	"github.com/zucenko/ladders/model"
)

const (
	hopSeconds   = .12
	slideSeconds = .5
)

type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

func (a *Action) next(t *gween.Tween) *Action {
	action := Action{}
	if a.nexts == nil {
		a.nexts = make([]func(g *Game), 0)
	}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return &action
}

func (g *Game) updateTweens(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

// Piece is a player's pawn, drawn from a tinted disc.
type Piece struct {
	image  *ebiten.Image
	pos    point
	scale  float64
	color  GameColor
	player model.PlayerId
}

func (p *Piece) Draw(screen *ebiten.Image) error {
	w, h := p.image.Size()
	// side by side when both share a cell
	dx := -8.0
	if p.player == model.Player2 {
		dx = 8
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.scale, p.scale)
	op.GeoM.Translate(p.pos.x+dx-float64(w)*p.scale/2, p.pos.y-float64(h)*p.scale/2)
	op.ColorM.Scale(p.color.r, p.color.g, p.color.b, 1)
	return screen.DrawImage(p.image, op)
}

func (p *Piece) between(from, to point) func(float32) {
	return func(v float32) {
		t := float64(v)
		p.pos = point{from.x + (to.x-from.x)*t, from.y + (to.y-from.y)*t}
	}
}

// waypoints lists the cells a piece passes: one hop per pip, then the
// ladder and snake ends.
func waypoints(b *model.Board, res engine.TurnResult) []model.Cell {
	cells := []model.Cell{res.From}
	if res.Overshoot {
		return cells
	}
	for c := res.From + 1; c <= res.Landed; c++ {
		cells = append(cells, c)
	}
	if res.Via == engine.VIA_LADDER_SNAKE {
		cells = append(cells, b.Ladders[res.Landed])
	}
	if res.To != res.Landed {
		cells = append(cells, res.To)
	}
	return cells
}

// animate chains one tween per waypoint and hands control back when the
// last one finishes.
func (g *Game) animate(res engine.TurnResult) {
	path := waypoints(g.Session.Board, res)
	if len(path) < 2 {
		g.settle()
		return
	}
	g.State = ACTING
	piece := g.Pieces[res.Player-1]

	var first *gween.Tween
	var head Action
	var last *Action
	for i := 1; i < len(path); i++ {
		from := cellCenter(g.Session.Board, path[i-1])
		to := cellCenter(g.Session.Board, path[i])
		duration, easing := float32(hopSeconds), ease.OutQuad
		if i > int(res.Landed-res.From) {
			duration, easing = slideSeconds, ease.InOutQuad
		}
		t := gween.New(0, 1, duration, easing)
		if first == nil {
			first = t
			head.onChange = piece.between(from, to)
			last = &head
			continue
		}
		last = last.next(t)
		last.onChange = piece.between(from, to)
	}
	last.addOnFinish(g.settle)
	g.Tweens[first] = head
}
