package net

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strings"
	"time"

	"ShapeBoard/internal/export"
	"ShapeBoard/internal/state"

	"github.com/gorilla/websocket"
)

// Server carries the browser front-end's gestures to per-session boards.
type Server struct {
	addr        string
	defaultName string
	sessions    *SessionManager
	upgrader    websocket.Upgrader
}

// NewServer creates a server that will listen on addr. Every new session
// starts with an empty document called defaultName.
func NewServer(addr, defaultName string) *Server {
	return &Server{
		addr:        addr,
		defaultName: defaultName,
		sessions:    NewSessionManager(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The front-end may be served from anywhere on the LAN.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Sessions exposes the live sessions.
func (s *Server) Sessions() *SessionManager { return s.sessions }

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.handleSocket)
	mux.HandleFunc("GET /sessions/{id}/{file}", s.handleDownload)
	return mux
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[SERVER] Shutdown: %v", err)
		}
	}()

	log.Printf("[SERVER] Listening on %s", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve on %s: %w", s.addr, err)
	}
	return nil
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SERVER] Upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()

	sess := newSession(conn, s.defaultName)
	s.sessions.Add(sess)
	defer s.sessions.Remove(sess)

	hello := sess.snapshot()
	hello.Type = MsgHello
	hello.SessionID = sess.ID
	if err := conn.WriteJSON(hello); err != nil {
		log.Printf("[SERVER] Session %s: %v", sess.ID, err)
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[SERVER] Session %s disconnected: %v", sess.ID, err)
			}
			return
		}

		var msg ClientMessage
		var reply *ServerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			reply = notice("Malformed message")
		} else {
			reply = sess.handle(r.Context(), msg)
		}
		if reply == nil {
			continue
		}
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("[SERVER] Session %s: failed to send %s: %v", sess.ID, reply.Type, err)
			return
		}
	}
}

// handle applies one gesture to the session's board and returns what to
// send back, if anything.
func (sess *Session) handle(ctx context.Context, msg ClientMessage) *ServerMessage {
	log.Printf("[SERVER] Session %s: received '%s'", sess.ID, msg.Type)

	switch msg.Type {
	case MsgPlace:
		_, ok := sess.Board.Place(state.Drop{
			Type:         msg.ShapeType,
			Color:        msg.Color,
			X:            msg.X,
			Y:            msg.Y,
			CanvasWidth:  msg.Width,
			CanvasHeight: msg.Height,
		})
		if !ok {
			return notice(fmt.Sprintf("Unknown shape %q", msg.ShapeType))
		}
		return sess.snapshot()

	case MsgRemove:
		sess.Board.Remove(msg.ID)
		return sess.snapshot()

	case MsgRename:
		sess.Board.Rename(msg.Name)
		return sess.snapshot()

	case MsgImport:
		content := msg.Content
		_, err := sess.importer.Import(ctx, export.File{
			Name:      msg.FileName,
			MediaType: msg.MediaType,
			Open: func() (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader(content)), nil
			},
		})
		if err != nil {
			if text := export.Notice(err); text != "" {
				return notice(text)
			}
			return nil
		}
		return sess.snapshot()

	case MsgExport:
		doc := sess.Board.Document()
		data, err := export.Serialize(doc)
		if err != nil {
			log.Printf("[SERVER] Session %s: %v", sess.ID, err)
			return notice("Export failed")
		}
		return &ServerMessage{
			Type:      MsgExport,
			FileName:  export.JSONFilename(doc.Name),
			MediaType: export.MediaType,
			Content:   string(data),
		}
	}

	return notice(fmt.Sprintf("Unknown message type %q", msg.Type))
}

func (sess *Session) snapshot() *ServerMessage {
	doc := sess.Board.Document()
	return &ServerMessage{
		Type:     MsgDocument,
		Document: &doc,
		Counts:   state.CountShapes(doc.Shapes),
	}
}

func notice(text string) *ServerMessage {
	return &ServerMessage{Type: MsgNotice, Text: text}
}

// downloads maps a download file name to its extension, content type and
// renderer.
var downloads = map[string]struct {
	ext         string
	contentType string
	render      func(io.Writer, state.Document) error
}{
	"export.json": {".json", export.MediaType, func(w io.Writer, doc state.Document) error {
		data, err := export.Serialize(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}},
	"export.pdf": {".pdf", "application/pdf", export.WritePDF},
	"export.svg": {".svg", "image/svg+xml", export.WriteSVG},
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, "no such session", http.StatusNotFound)
		return
	}
	dl, ok := downloads[r.PathValue("file")]
	if !ok {
		http.Error(w, "unknown export format", http.StatusNotFound)
		return
	}

	doc := sess.Board.Document()
	var buf bytes.Buffer
	if err := dl.render(&buf, doc); err != nil {
		log.Printf("[SERVER] Session %s: export %s failed: %v", sess.ID, r.PathValue("file"), err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", dl.contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": export.Filename(doc.Name, dl.ext),
	}))
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[SERVER] Session %s: %v", sess.ID, err)
	}
}
