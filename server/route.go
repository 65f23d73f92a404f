package server

import (
	"github.com/matryer/way"
)

const URI_WATCH = "/watch"
const URI_SETUP = "/setup"

func (h *Hub) Routes() *way.Router {
	router := way.NewRouter()
	router.HandleFunc("GET", URI_WATCH, h.HandleHttpCall())
	router.HandleFunc("GET", URI_SETUP, h.HandleSetup())
	return router
}
