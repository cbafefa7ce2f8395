package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Evavic44/faker/logging"
	"github.com/Evavic44/faker/metrics"
)

const (
	defaultStreamType = "json"

	// closeWait bounds the delivery of the final close frame.
	closeWait = time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// streamMessage is one frame of the stream endpoint. The seed rides along
// so a consumer that never chose one can still replay the session.
type streamMessage struct {
	Seq   int    `json:"seq"`
	Seed  uint64 `json:"seed"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// handleStream serves GET /stream. It upgrades to a websocket, pushes count
// values of the requested type as JSON frames, then closes normally.
// Parameter failures after the upgrade surface as a close frame carrying
// the reason.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	valueType := query.Get("type")
	if valueType == "" {
		valueType = defaultStreamType
	}

	seed, err := s.resolveSeed(query)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	count, err := resolveCount(query)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	gen, err := s.generator(seed)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written its own HTTP error.
		logging.L(ctx).Warn("websocket upgrade failed", logging.ErrAttr(err))
		return
	}
	defer conn.Close()

	closed := metrics.StreamOpened()
	defer closed()

	logger := logging.L(ctx)
	logger.Info("stream opened",
		logging.StringAttr("type", valueType),
		logging.Uint64Attr("seed", seed),
		logging.IntAttr("count", count),
	)

	for seq := 0; seq < count; seq++ {
		value, err := synthesize(gen, valueType, query)
		if err != nil {
			metrics.ObserveGenerationError(valueType)
			logger.Warn("stream generation failed", logging.ErrAttr(err))
			s.closeStream(conn, websocket.CloseUnsupportedData, err.Error())
			return
		}

		frame := streamMessage{Seq: seq, Seed: seed, Type: valueType, Value: value}
		if err := conn.WriteJSON(frame); err != nil {
			logger.Warn("stream write failed", logging.ErrAttr(err))
			return
		}
	}

	metrics.ObserveGenerated(valueType, count)
	s.closeStream(conn, websocket.CloseNormalClosure, "stream complete")
}

func (s *Server) closeStream(conn *websocket.Conn, code int, reason string) {
	message := websocket.FormatCloseMessage(code, reason)
	deadline := s.clk.Now().Add(closeWait)
	_ = conn.WriteControl(websocket.CloseMessage, message, deadline)
}
