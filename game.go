package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/ladders/config"
	"github.com/zucenko/ladders/engine"
	"github.com/zucenko/ladders/model"
	"github.com/zucenko/ladders/server"
	"golang.org/x/image/font"
)

const (
	windowWidth  = 800
	windowHeight = 600
	cellSize     = 50
	boardPadding = 50
	tps          = 60
)

func HexToF32(u uint32, id int) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b, id}
}

type GameColor struct {
	r  float64
	g  float64
	b  float64
	id int
}

func (c GameColor) RGBA(alpha uint8) color.RGBA {
	a := float64(alpha) / 255
	return color.RGBA{uint8(c.r * 255 * a), uint8(c.g * 255 * a), uint8(c.b * 255 * a), alpha}
}

var (
	COLOR_WHITE      = HexToF32(0xffffff, 0)
	COLOR_BLACK      = HexToF32(0x000000, 0)
	COLOR_LIGHT_BLUE = HexToF32(0xc8e6ff, 0)
	COLOR_DARK_BLUE  = HexToF32(0xa0c8ff, 0)
	COLOR_LADDER     = HexToF32(0x8b4513, 0)
	COLOR_SNAKE      = HexToF32(0x32ff32, 0)
	COLOR_PANEL      = HexToF32(0xeef4fb, 0)
)

type ShellState int

const (
	IDLE ShellState = iota + 1
	ACTING
	GAME_OVER
)

func (s ShellState) Name() string {
	switch s {
	case IDLE:
		return "IDLE"
	case ACTING:
		return "ACTING"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Publisher receives every setup and turn; the spectator hub implements it.
type Publisher interface {
	Publish(model.ServerMessage)
}

// Game is the render/input shell around one engine.Session. It is the only
// place that knows about pixels, fonts and frame timing.
type Game struct {
	State      ShellState
	Session    *engine.Session
	Seed       int64
	Publisher  Publisher
	Pieces     [2]*Piece
	Tweens     map[*gween.Tween]Action
	BoardImage *ebiten.Image
	Panel      *Nine
	Card       *Nine

	numberFont font.Face
	labelFont  font.Face
}

func NewGame(session *engine.Session, seed int64, pub Publisher) (*Game, error) {
	numberFont, err := loadFace(14)
	if err != nil {
		return nil, err
	}
	labelFont, err := loadFace(26)
	if err != nil {
		return nil, err
	}
	dot, err := newDiscImage(56)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Session:    session,
		Seed:       seed,
		Publisher:  pub,
		Tweens:     make(map[*gween.Tween]Action),
		Panel:      NewPanel(dot, COLOR_PANEL, 1),
		Card:       NewPanel(dot, COLOR_WHITE, 1),
		numberFont: numberFont,
		labelFont:  labelFont,
	}
	g.Panel.SetPosition(boardPadding*2+cellSize*engine.GridSize-40, boardPadding)
	g.Panel.SetSize(225, 170)
	g.Card.SetPosition(windowWidth/2-220, windowHeight/2-90)
	g.Card.SetSize(440, 180)
	for i := range g.Pieces {
		g.Pieces[i] = &Piece{image: dot, scale: 15.0 / 56}
	}
	if err := g.newBoard(); err != nil {
		return nil, err
	}
	return g, nil
}

// newBoard redraws the static board and puts the pieces back on their cells.
func (g *Game) newBoard() error {
	img, err := renderBoard(g.Session.Board, g.numberFont)
	if err != nil {
		return err
	}
	g.BoardImage = img
	for k := range g.Tweens {
		delete(g.Tweens, k)
	}
	for i := range g.Pieces {
		p := g.Session.Players[i]
		g.Pieces[i].color = HexToF32(p.Color, int(p.Id))
		g.Pieces[i].player = p.Id
		g.Pieces[i].pos = cellCenter(g.Session.Board, p.Position)
	}
	g.settle()
	g.publish(model.ServerMessage{Setup: []model.Setup{g.Session.Setup(g.Seed)}})
	return nil
}

func (g *Game) settle() {
	if g.Session.Over() {
		g.State = GAME_OVER
	} else {
		g.State = IDLE
	}
}

func (g *Game) publish(m model.ServerMessage) {
	if g.Publisher != nil {
		g.Publisher.Publish(m)
	}
}

func (g *Game) handle(ev engine.Event) error {
	switch ev {
	case engine.ROLL_REQUESTED:
		if g.State != IDLE {
			return nil
		}
		res, err := g.Session.Handle(ev)
		if errors.Is(err, engine.ErrGameOver) {
			return nil
		}
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"player": res.Player,
			"dice":   res.Dice,
			"from":   res.From,
			"to":     res.To,
			"via":    res.Via.Name(),
		}).Debug("turn")
		if res.Won {
			log.Infof("player %d wins", res.Player)
		}
		g.publish(model.ServerMessage{Turns: []model.TurnInfo{res.Info()}})
		g.animate(res)
	case engine.RESTART_REQUESTED:
		if _, err := g.Session.Handle(ev); err != nil {
			return err
		}
		log.Info("restart")
		return g.newBoard()
	default:
		_, err := g.Session.Handle(ev)
		return err
	}
	return nil
}

func (g *Game) update(screen *ebiten.Image) error {
	g.updateTweens(1.0 / tps)

	for _, ev := range pollEvents(g.State == GAME_OVER) {
		if err := g.handle(ev); err != nil {
			return err
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return g.draw(screen)
}

func (g *Game) draw(screen *ebiten.Image) error {
	if err := screen.Fill(color.White); err != nil {
		return err
	}
	if err := screen.DrawImage(g.BoardImage, &ebiten.DrawImageOptions{}); err != nil {
		return err
	}
	for _, p := range g.Pieces {
		if err := p.Draw(screen); err != nil {
			return err
		}
	}

	if g.State == GAME_OVER {
		g.drawWinnerCard(screen)
	} else {
		g.drawPanel(screen)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s seed:%d", g.State.Name(), g.Seed), 4, windowHeight-16)
	return nil
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	g.Panel.Draw(screen)
	x := g.Panel.x + 16
	y := g.Panel.y + 40
	black := COLOR_BLACK.RGBA(0xff)
	turn := g.Session.Current()
	text.Draw(screen, fmt.Sprintf("Player %d", turn.Id), g.labelFont, x, y, HexToF32(turn.Color, 0).RGBA(0xff))
	text.Draw(screen, fmt.Sprintf("Dice: %d", g.Session.LastDice), g.labelFont, x, y+45, black)
	text.Draw(screen, "SPACE to roll", g.numberFont, x, y+90, black)
	text.Draw(screen, "R new board  Q quit", g.numberFont, x, y+112, black)
}

func (g *Game) drawWinnerCard(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, windowWidth, windowHeight, COLOR_WHITE.RGBA(200))
	g.Card.Draw(screen)
	black := COLOR_BLACK.RGBA(0xff)
	drawCentered(screen, fmt.Sprintf("Player %d Wins!", g.Session.Winner), g.labelFont, windowHeight/2-10, black)
	drawCentered(screen, "Press ESC to exit, R to play again", g.numberFont, windowHeight/2+40, black)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	w := font.MeasureString(face, s).Round()
	text.Draw(screen, s, face, (windowWidth-w)/2, y, clr)
}

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	cfg.SetupLogging()

	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("board: %v", err)
	}
	seed, err := cfg.ResolveSeed()
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("seed %d", seed)
	session := engine.NewSeededSession(opts, seed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var pub Publisher
	if cfg.SpectateAddr != "" {
		hub := server.NewHub()
		pub = hub
		go func() {
			if err := hub.ListenAndServe(ctx, cfg.SpectateAddr); err != nil {
				log.Errorf("spectator feed: %v", err)
			}
		}()
	}

	theGame, err := NewGame(session, seed, pub)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetMaxTPS(tps)
	if err := ebiten.Run(theGame.update, windowWidth, windowHeight, cfg.Scale, "Snakes and Ladders"); err != nil && !errors.Is(err, engine.ErrQuit) {
		log.Fatal(err)
	}
}
