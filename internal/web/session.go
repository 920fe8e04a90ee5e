package web

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"slidedeck/internal/input"
	"slidedeck/internal/nav"
	"slidedeck/internal/render"
	"slidedeck/internal/telemetry"

	"github.com/gorilla/websocket"
)

// clientMessage is the incoming websocket message format.
type clientMessage struct {
	Type   string `json:"type"`             // "key" or "click"
	Key    string `json:"key,omitempty"`    // KeyboardEvent.key
	Action string `json:"action,omitempty"` // "prev" or "next"
}

// renderMessage carries the updated deck shell.
type renderMessage struct {
	Type     string `json:"type"` // "render"
	Index    int    `json:"index"`
	Progress int    `json:"progress"`
	HTML     string `json:"html"`
}

type errorMessage struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

// session is one browser connection. It owns a navigation controller and a
// key source whose subscription lives exactly as long as the connection.
type session struct {
	id      string
	srv     *Server
	conn    *websocket.Conn
	nav     *nav.Controller
	keys    *input.Source
	sub     *input.Subscription
	trigger string
}

func newSession(srv *Server, conn *websocket.Conn, id string) (*session, error) {
	ctrl, err := nav.New(srv.deck.Len())
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	s := &session{
		id:   id,
		srv:  srv,
		conn: conn,
		nav:  ctrl,
		keys: input.NewSource(),
	}
	ctrl.OnChange = s.onChange
	s.sub = input.Listen(s.keys, srv.mapper, ctrl, nil)
	return s, nil
}

// close releases the key subscription.
func (s *session) close() {
	s.sub.Close()
}

// run reads messages until the connection ends.
func (s *session) run() {
	s.sendRender()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("web: session %s: read: %v", s.id, err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("invalid message format")
			continue
		}
		before := s.nav.Index()
		switch msg.Type {
		case "key":
			if msg.Key == "" {
				s.sendError("key is required")
				continue
			}
			s.trigger = "key:" + msg.Key
			s.keys.Dispatch(msg.Key)
		case "click":
			if msg.Action != render.ButtonPrev && msg.Action != render.ButtonNext {
				s.sendError("unknown action: " + msg.Action)
				continue
			}
			s.trigger = "click:" + msg.Action
			render.Press(msg.Action, s.nav, s.nav)
		default:
			s.sendError("unknown message type: " + msg.Type)
			continue
		}
		if s.nav.Index() != before {
			s.sendRender()
		}
	}
}

func (s *session) sendRender() {
	out, err := RenderHTML(render.Shell(s.srv.deck, s.nav, s.srv.labels))
	if err != nil {
		log.Printf("web: session %s: %v", s.id, err)
		s.sendError("render failed")
		return
	}
	s.write(renderMessage{
		Type:     "render",
		Index:    s.nav.Index(),
		Progress: s.nav.Progress(),
		HTML:     out,
	})
}

func (s *session) sendError(message string) {
	s.write(errorMessage{Type: "error", Message: message})
}

func (s *session) write(v any) {
	if err := s.conn.WriteJSON(v); err != nil {
		log.Printf("web: session %s: write: %v", s.id, err)
	}
}

func (s *session) onChange(from, to int) {
	if s.srv.opts.Verbose {
		log.Printf("web: session %s: slide %d -> %d (%s)", s.id, from+1, to+1, s.trigger)
	}
	s.srv.opts.Telemetry.RecordNavigation(context.Background(), telemetry.Navigation{
		Host:    "web",
		Session: s.id,
		Trigger: s.trigger,
		From:    from,
		To:      to,
		Total:   s.nav.Len(),
	})
}
