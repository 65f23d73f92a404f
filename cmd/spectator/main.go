package main

import (
	"context"
	"encoding/gob"
	"flag"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/model"
	"github.com/zucenko/ladders/server"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "address of a game started with -spectate-addr")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	u := url.URL{Scheme: "ws", Host: *addr, Path: server.URI_WATCH}
	con, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		log.Fatalf("dial %s: %v", u.String(), err)
	}
	defer con.Close()
	go func() {
		<-ctx.Done()
		con.Close()
	}()

	log.Infof("watching %s", u.String())
	for {
		_, r, err := con.NextReader()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Info("game closed the feed")
				return
			}
			if ctx.Err() != nil {
				return
			}
			log.Fatalf("read: %v", err)
		}
		var mes model.ServerMessage
		if err := gob.NewDecoder(r).Decode(&mes); err != nil {
			log.Fatalf("decode: %v", err)
		}
		for _, s := range mes.Setup {
			log.WithFields(log.Fields{
				"seed":    s.Seed,
				"ladders": s.Ladders,
				"snakes":  s.Snakes,
			}).Info("new board")
		}
		for _, t := range mes.Turns {
			entry := log.WithFields(log.Fields{
				"player": t.Player,
				"dice":   t.Dice,
				"from":   t.From,
				"to":     t.To,
				"via":    t.Via,
			})
			switch {
			case t.Overshoot:
				entry.Info("overshoot, no move")
			case t.Won:
				entry.Infof("player %d wins", t.Player)
			default:
				entry.Info("move")
			}
		}
	}
}
