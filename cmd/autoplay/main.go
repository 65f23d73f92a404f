package main

import (
	"errors"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/config"
	"github.com/zucenko/ladders/engine"
	"github.com/zucenko/ladders/model"
)

// maxTurns guards against a board whose snakes keep a game going forever.
const maxTurns = 10000

func main() {
	fs := flag.NewFlagSet("autoplay", flag.ExitOnError)
	games := fs.Int("games", 1, "number of games to play")
	cfg, err := config.ParseConfig(fs, os.Args[1:])
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
	wins := map[model.PlayerId]int{}
	for g := 0; g < *games; g++ {
		if g > 0 {
			session.Reset()
		}
		turns, err := play(session)
		if err != nil {
			log.Warnf("game %d: %v", g+1, err)
			continue
		}
		wins[session.Winner]++
		log.WithFields(log.Fields{
			"game":   g + 1,
			"turns":  turns,
			"winner": session.Winner,
		}).Info("game over")
	}
	log.Infof("player 1 won %d, player 2 won %d", wins[model.Player1], wins[model.Player2])
}

func play(s *engine.Session) (int, error) {
	for turns := 1; turns <= maxTurns; turns++ {
		res, err := s.Roll()
		if err != nil {
			return turns, err
		}
		log.WithFields(log.Fields{
			"player": res.Player,
			"dice":   res.Dice,
			"to":     res.To,
			"via":    res.Via.Name(),
		}).Debug("turn")
		if res.Won {
			return turns, nil
		}
	}
	return maxTurns, errors.New("no winner")
}
