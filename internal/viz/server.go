package viz

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"whalehunt/internal/util"
)

const (
	pingPeriod = 25 * time.Second
	writeWait  = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Server struct {
	addr string
	hub  *Hub
}

func NewServer(addr string, hub *Hub) *Server {
	return &Server{addr: addr, hub: hub}
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", s.home).Methods("GET")
	router.HandleFunc("/frame", s.frame).Methods("GET")
	router.HandleFunc("/ws", s.stream).Methods("GET")
	return router
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	util.Debug("viz", "listening on "+s.addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<h2>whalehunt</h2><a href='/frame'>latest frame</a><br />websocket: /ws (%d watching)", s.hub.Subscribers())
}

func (s *Server) frame(w http.ResponseWriter, r *http.Request) {
	b := s.hub.Latest()
	if b == nil {
		http.Error(w, "no frame yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	frames, last, cancel := s.hub.Subscribe()
	defer cancel()

	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		util.Debug("viz", "upgrade: "+err.Error())
		return
	}
	defer c.Close()

	// Reads are only needed to notice the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if last != nil {
		if err := s.write(c, websocket.TextMessage, last); err != nil {
			return
		}
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-closed:
			return
		case msg, open := <-frames:
			if !open {
				return
			}
			b, ok := msg.([]byte)
			if !ok {
				continue
			}
			if err := s.write(c, websocket.TextMessage, b); err != nil {
				return
			}
		case <-ticker.C:
			if err := s.write(c, websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Server) write(c *websocket.Conn, kind int, b []byte) error {
	_ = c.SetWriteDeadline(time.Now().Add(writeWait))
	return c.WriteMessage(kind, b)
}
