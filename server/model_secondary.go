package server

import "fmt"

const HTTP_NOT_FOUND = 404
const HTTP_SERVER_ERR = 503

func (s SpectatorState) Name() string {
	switch s {
	case SS_NEW:
		return "NEW"
	case SS_WATCH:
		return "WATCH"
	case SS_GONE:
		return "GONE"
	case SS_ERR:
		return "ERR"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}
