package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/ladders/model"
)

// Hub fans game messages out to spectators. Only Loop touches the
// spectator set.
type Hub struct {
	Upgrader   *websocket.Upgrader
	Broadcasts chan model.ServerMessage
	Register   chan *Spectator
	Unregister chan *Spectator

	spectators map[*Spectator]struct{}
	nextId     int32
	stopped    chan struct{}

	setupMu sync.RWMutex
	setup   *model.Setup
}

type SpectatorState int

const (
	SS_NEW SpectatorState = iota + 1
	SS_WATCH
	SS_GONE
	SS_ERR
)

type Spectator struct {
	State          SpectatorState
	Id             int32
	Hub            *Hub
	Conn           *websocket.Conn
	MessagesToSend chan model.ServerMessage

	DebugOutMessages int
	DebugLastMessage time.Time
}
