// Package vizserver exposes a running flock over HTTP: health, one-shot snapshots, tuning
// updates and a websocket streaming every published frame as protojson.
package vizserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/lao-tseu-is-alive/go-flock3d/pb"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const (
	askTimeout   = 2 * time.Second
	writeTimeout = 5 * time.Second
	maxBodyBytes = 1 << 16
)

// Server serves one engine.
type Server struct {
	engine    *simulation.Engine
	hub       *Hub
	logger    golog.Logger
	accessLog io.Writer
	tickRate  int
	upgrader  websocket.Upgrader
}

// Option configures a Server.
type Option func(*Server)

// WithAccessLog writes an Apache combined log line per request to w.
func WithAccessLog(w io.Writer) Option {
	return func(s *Server) { s.accessLog = w }
}

// WithLogger replaces the discard logger.
func WithLogger(l golog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer wraps an engine. tickRate is the number of Tick messages sent per second by
// Run, zero leaves driving the flock to someone else.
func NewServer(engine *simulation.Engine, tickRate int, opts ...Option) *Server {
	s := &Server{
		engine:   engine,
		hub:      NewHub(),
		logger:   golog.DiscardLogger,
		tickRate: tickRate,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Hub() *Hub { return s.hub }

// Router returns the HTTP routes, wrapped in the access log when one is configured.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	router.HandleFunc("/snapshot", s.snapshot).Methods(http.MethodGet)
	router.HandleFunc("/tuning", s.tuning).Methods(http.MethodPost)
	router.HandleFunc("/respawn", s.respawn).Methods(http.MethodPost)
	router.HandleFunc("/ws", s.stream).Methods(http.MethodGet)
	if s.accessLog == nil {
		return router
	}
	return handlers.CombinedLoggingHandler(s.accessLog, router)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) {
	resp, err := actor.Ask(r.Context(), s.engine.Flock, &pb.GetSnapshot{}, askTimeout)
	if err != nil {
		s.logger.Errorf("snapshot ask failed: %v", err)
		http.Error(w, "flock unavailable", http.StatusServiceUnavailable)
		return
	}
	s.writeProto(w, http.StatusOK, resp)
}

func (s *Server) tuning(w http.ResponseWriter, r *http.Request) {
	msg := &pb.UpdateTuning{}
	if err := readProto(r, msg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.tell(w, r, msg)
}

func (s *Server) respawn(w http.ResponseWriter, r *http.Request) {
	msg := &pb.Respawn{}
	if err := readProto(r, msg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.tell(w, r, msg)
}

func (s *Server) tell(w http.ResponseWriter, r *http.Request, msg proto.Message) {
	if err := actor.Tell(r.Context(), s.engine.Flock, msg); err != nil {
		s.logger.Errorf("tell %T failed: %v", msg, err)
		http.Error(w, "flock unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// readProto decodes an optional protojson body, an empty body leaves msg at its zero value.
func readProto(r *http.Request, msg proto.Message) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}
	if len(body) == 0 {
		return nil
	}
	if err := protojson.Unmarshal(body, msg); err != nil {
		return fmt.Errorf("failed to decode %T: %w", msg, err)
	}
	return nil
}

func (s *Server) writeProto(w http.ResponseWriter, status int, msg proto.Message) {
	b, err := protojson.Marshal(msg)
	if err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnf("upgrade: %v", err)
		return
	}
	watcher := s.hub.Add()
	defer func() {
		s.hub.Remove(watcher.ID())
		_ = c.Close()
		s.logger.Debugf("watcher %s left, %d remaining", watcher.ID(), s.hub.Len())
	}()

	// Listen to messages incoming from the client; mandatory to notice when the socket is closed client side
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case frame := <-watcher.Frames():
			_ = c.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		}
	}
}

// Publish encodes a snapshot once and broadcasts it.
func (s *Server) Publish(snap *pb.WorldSnapshot) error {
	b, err := protojson.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	s.hub.Broadcast(b)
	return nil
}

// Run serves addr until ctx is done, forwarding the engine snapshots to the websocket
// watchers and ticking the flock at the configured rate.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Router(), ReadHeaderTimeout: 5 * time.Second}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Infof("VIZ Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case snap := <-s.engine.Snapshots:
				if err := s.Publish(snap); err != nil {
					s.logger.Error(err)
				}
			}
		}
	})
	if s.tickRate > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := actor.Tell(ctx, s.engine.Flock, &pb.Tick{Steps: 1}); err != nil && ctx.Err() == nil {
						return fmt.Errorf("failed to send tick: %w", err)
					}
				}
			}
		})
	}
	return g.Wait()
}
