package server

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/model"
)

const (
	broadcastBuffer = 64
	spectatorBuffer = 16
)

func NewHub() *Hub {
	return &Hub{
		Upgrader:   &websocket.Upgrader{},
		Broadcasts: make(chan model.ServerMessage, broadcastBuffer),
		Register:   make(chan *Spectator),
		Unregister: make(chan *Spectator),
		spectators: make(map[*Spectator]struct{}),
		stopped:    make(chan struct{}),
	}
}

// Publish never blocks the game loop; a full queue drops the message.
func (h *Hub) Publish(m model.ServerMessage) {
	if len(m.Setup) > 0 {
		setup := m.Setup[len(m.Setup)-1]
		h.setupMu.Lock()
		h.setup = &setup
		h.setupMu.Unlock()
	}
	select {
	case h.Broadcasts <- m:
	default:
		log.Warnf("Hub.Publish dropping message, Broadcasts FULL")
	}
}

func (h *Hub) LatestSetup() *model.Setup {
	h.setupMu.RLock()
	defer h.setupMu.RUnlock()
	return h.setup
}

func (h *Hub) Loop(ctx context.Context) {
	log.Info("Hub.Loop starting")
	defer close(h.stopped)
	for {
		select {
		case sp := <-h.Register:
			log.Infof("Hub.Loop spectator %d joined", sp.Id)
			h.spectators[sp] = struct{}{}
			if setup := h.LatestSetup(); setup != nil {
				h.send(sp, model.ServerMessage{Setup: []model.Setup{*setup}})
			}
		case sp := <-h.Unregister:
			h.drop(sp)
		case m := <-h.Broadcasts:
			for sp := range h.spectators {
				h.send(sp, m)
			}
		case <-ctx.Done():
			for sp := range h.spectators {
				h.drop(sp)
			}
			log.Info("Hub.Loop stopped")
			return
		}
	}
}

func (h *Hub) send(sp *Spectator, m model.ServerMessage) {
	select {
	case sp.MessagesToSend <- m:
	default:
		log.Warnf("Hub spectator %d too slow, dropping it", sp.Id)
		h.drop(sp)
	}
}

func (h *Hub) drop(sp *Spectator) {
	if _, ok := h.spectators[sp]; !ok {
		return
	}
	delete(h.spectators, sp)
	close(sp.MessagesToSend)
	log.Infof("Hub.Loop spectator %d left", sp.Id)
}

func (h *Hub) leave(sp *Spectator) {
	select {
	case h.Unregister <- sp:
	case <-h.stopped:
	}
}

func (h *Hub) HandleHttpCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - spectator connecting")
		select {
		case <-h.stopped:
			w.WriteHeader(HTTP_SERVER_ERR)
			return
		default:
		}

		con, err := h.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		sp := &Spectator{
			State:          SS_NEW,
			Id:             atomic.AddInt32(&h.nextId, 1),
			Hub:            h,
			Conn:           con,
			MessagesToSend: make(chan model.ServerMessage, spectatorBuffer),
		}
		select {
		case h.Register <- sp:
		case <-h.stopped:
			return
		case <-time.After(timeout):
			log.Warn("HandleHttpCall Register TIMEOUTED")
			return
		}
		sp.State = SS_WATCH

		go sp.LoopChannelRead()
		sp.LoopChannelWrite()
	}
}

func (h *Hub) HandleSetup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setup := h.LatestSetup()
		if setup == nil {
			w.WriteHeader(HTTP_NOT_FOUND)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(setup); err != nil {
			log.Warnf("HandleSetup encode %v", err)
		}
	}
}

// ListenAndServe runs the hub and its HTTP routes until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	go h.Loop(ctx)
	srv := &http.Server{Addr: addr, Handler: h.Routes()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warnf("spectator server shutdown %v", err)
		}
	}()
	log.Infof("spectator feed on %s%s", addr, URI_WATCH)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// spectators only listen; reading keeps control frames flowing and
// notices when the peer goes away
func (sp *Spectator) LoopChannelRead() {
	for {
		if _, _, err := sp.Conn.NextReader(); err != nil {
			log.Debugf("LoopChannelRead spectator %d: %v", sp.Id, err)
			sp.Hub.leave(sp)
			return
		}
	}
}

// this function only consumes. no worries about full buffer stuck
func (sp *Spectator) LoopChannelWrite() {
	for mes := range sp.MessagesToSend {
		w, err := sp.Conn.NextWriter(websocket.BinaryMessage)
		if err != nil {
			log.Warnf("Spectator.LoopChannelWrite cant get writer %v", err)
			sp.fail()
			return
		}
		if err := gob.NewEncoder(w).Encode(mes); err != nil {
			log.Warnf("Spectator.LoopChannelWrite cant encode %v", err)
			sp.fail()
			return
		}
		if err := w.Close(); err != nil {
			log.Warnf("Spectator.LoopChannelWrite cant flush %v", err)
			sp.fail()
			return
		}
		sp.DebugOutMessages++
		sp.DebugLastMessage = time.Now()
	}
	sp.State = SS_GONE
	err := sp.Conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	if err != nil && err != websocket.ErrCloseSent {
		log.Debugf("Spectator.LoopChannelWrite close %v", err)
	}
}

func (sp *Spectator) fail() {
	sp.State = SS_ERR
	sp.Hub.leave(sp)
}
