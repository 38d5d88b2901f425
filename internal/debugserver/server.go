// internal/debugserver/server.go
package debugserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/pprof"
	"time"

	"pixel-war/internal/logging"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	streamInterval = 250 * time.Millisecond
	writeTimeout   = 10 * time.Second
	pongWait       = 60 * time.Second
)

// Server — локальный отладочный HTTP: состояние, поток и pprof.
type Server struct {
	addr     string
	pub      *Publisher
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

func New(addr string, pub *Publisher) *Server {
	return &Server{
		addr: addr,
		pub:  pub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: logging.For("debug"),
	}
}

// Handler собирает маршруты.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/debug/state", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/debug/stream", s.handleStream).Methods(http.MethodGet)

	r.HandleFunc("/debug/pprof/", pprof.Index)
	r.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	r.HandleFunc("/debug/pprof/profile", pprof.Profile)
	r.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	r.HandleFunc("/debug/pprof/trace", pprof.Trace)
	r.PathPrefix("/debug/pprof/").HandlerFunc(pprof.Index)
	return r
}

// Start запускает сервер в отдельной горутине и останавливает его при отмене ctx.
func (s *Server) Start(ctx context.Context) {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		s.log.Info().Str("addr", s.addr).Msg("debug server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Warn().Err(err).Msg("debug server stopped")
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	data, err := json.Marshal(s.pub.Latest())
	if err != nil {
		http.Error(w, "failed to encode", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("upgrade failed")
		return
	}
	defer conn.Close()

	// читатель нужен, чтобы обрабатывать close и pong от клиента
	done := make(chan struct{})
	conn.SetReadLimit(1 << 10)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()
	for {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(s.pub.Latest()); err != nil {
			s.log.Debug().Err(err).Msg("stream client gone")
			return
		}
		select {
		case <-ticker.C:
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
