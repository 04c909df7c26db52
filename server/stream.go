package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// StreamEvent is one entry on the event stream. Sequence numbers are
// strictly increasing; a client reconnecting with ?cursor=<last seen>
// replays everything it missed that is still in the buffer.
type StreamEvent struct {
	Sequence int64           `json:"sequence"`
	Kind     string          `json:"kind"`
	Payload  json.RawMessage `json:"payload"`
}

type subscriber struct {
	events chan *StreamEvent
}

// Hub fans alert and incident transitions out to websocket subscribers.
// A bounded replay buffer backs the resume cursor; events older than the
// buffer are gone and the client restarts from the live stream.
type Hub struct {
	logger     lager.Logger
	upgrader   websocket.Upgrader
	bufferSize int

	lock        sync.Mutex
	sequence    int64
	buffer      []*StreamEvent
	subscribers map[*subscriber]bool
}

func NewHub(logger lager.Logger, bufferSize int) *Hub {
	return &Hub{
		logger: logger.Session("stream-hub"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		bufferSize:  bufferSize,
		subscribers: map[*subscriber]bool{},
	}
}

// Publish assigns the next sequence number and delivers the event to every
// subscriber. A subscriber that cannot keep up is dropped rather than
// allowed to stall the publisher.
func (h *Hub) Publish(kind string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed-to-marshal-stream-event", err, lager.Data{"kind": kind})
		return
	}

	h.lock.Lock()
	h.sequence++
	event := &StreamEvent{Sequence: h.sequence, Kind: kind, Payload: body}
	h.buffer = append(h.buffer, event)
	if len(h.buffer) > h.bufferSize {
		h.buffer = h.buffer[len(h.buffer)-h.bufferSize:]
	}
	for sub := range h.subscribers {
		select {
		case sub.events <- event:
		default:
			delete(h.subscribers, sub)
			close(sub.events)
			h.logger.Info("slow-subscriber-dropped")
		}
	}
	h.lock.Unlock()
}

// subscribe registers a subscriber and returns the buffered events after
// the cursor, atomically with registration so no event falls between
// replay and live delivery.
func (h *Hub) subscribe(cursor int64) (*subscriber, []*StreamEvent) {
	h.lock.Lock()
	defer h.lock.Unlock()

	replay := []*StreamEvent{}
	for _, event := range h.buffer {
		if event.Sequence > cursor {
			replay = append(replay, event)
		}
	}
	sub := &subscriber{events: make(chan *StreamEvent, 64)}
	h.subscribers[sub] = true
	return sub, replay
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.subscribers[sub] {
		delete(h.subscribers, sub)
		close(sub.events)
	}
}

func (h *Hub) ServeStream(w http.ResponseWriter, r *http.Request) {
	cursor := int64(0)
	if cursorParam := r.URL.Query().Get("cursor"); cursorParam != "" {
		parsed, err := strconv.ParseInt(cursorParam, 10, 64)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid cursor", http.StatusBadRequest)
			return
		}
		cursor = parsed
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("failed-to-upgrade-connection", err)
		return
	}

	sub, replay := h.subscribe(cursor)
	h.logger.Debug("subscriber-connected", lager.Data{"cursor": cursor, "replay": len(replay)})

	go h.discardReads(conn, sub)
	h.writeLoop(conn, sub, replay)
}

// discardReads drains the client side so close frames and pongs are
// processed; client data messages are ignored.
func (h *Hub) discardReads(conn *websocket.Conn, sub *subscriber) {
	for {
		if _, _, err := conn.NextReader(); err != nil {
			h.unsubscribe(sub)
			return
		}
	}
}

func (h *Hub) writeLoop(conn *websocket.Conn, sub *subscriber, replay []*StreamEvent) {
	defer func() {
		h.unsubscribe(sub)
		_ = conn.Close()
	}()

	for _, event := range replay {
		if err := h.writeEvent(conn, event); err != nil {
			return
		}
	}

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()
	for {
		select {
		case event, ok := <-sub.events:
			if !ok {
				return
			}
			if err := h.writeEvent(conn, event); err != nil {
				return
			}
		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) writeEvent(conn *websocket.Conn, event *StreamEvent) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(event); err != nil {
		h.logger.Error("failed-to-write-stream-event", err)
		return err
	}
	return nil
}
