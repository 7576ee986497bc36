package server

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"

	"cellshade/internal/render"
	"cellshade/internal/shade"
	"cellshade/internal/universe"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// The rate at which the world is checked for changes to publish.
	framePeriod = 100 * time.Millisecond
)

// Server renders a shared world whenever it changes and pushes the PNG frame
// to every connected websocket client. Frames are idempotent: a client only
// ever needs the latest one, so slow clients skip intermediate frames rather
// than queue them.
type Server struct {
	scale    int
	colors   shade.ColorPair
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	world    *universe.World
	frame    []byte
	frameRev uint64
	rendered bool

	subMu sync.Mutex
	subs  map[chan []byte]struct{}
}

// New returns a server over the provided world. A nil logger discards output.
func New(world *universe.World, colors shade.ColorPair, scale int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(nopHandler{})
	}
	if scale < 1 {
		scale = 1
	}
	return &Server{
		scale:  scale,
		colors: colors,
		logger: logger,
		world:  world,
		subs:   make(map[chan []byte]struct{}),
	}
}

// Update applies a mutation to the world under the write lock. The next
// publish tick picks the change up and fans the new frame out.
func (s *Server) Update(mutate func(*universe.World)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(s.world)
}

// Handler returns the HTTP routes: the viewer page, the websocket endpoint
// and the current frame as a plain PNG.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/frame.png", s.serveFrame)
	return mux
}

// Run serves HTTP on addr and publishes frames until ctx is canceled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{Addr: addr, Handler: s.Handler()}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.publishLoop(groupCtx.Done())
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	group.Go(func() error {
		s.logger.Info("listening", "addr", addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	return group.Wait()
}

// publishLoop re-renders on world changes and fans the frame out to all
// subscribers.
func (s *Server) publishLoop(done <-chan struct{}) {
	ticker := channerics.NewTicker(done, framePeriod)
	for {
		select {
		case <-done:
			return
		case <-ticker:
		}

		frame, changed := s.currentFrame()
		if !changed {
			continue
		}
		s.subMu.Lock()
		for sub := range s.subs {
			// Replace a pending stale frame instead of blocking.
			select {
			case <-sub:
			default:
			}
			select {
			case sub <- frame:
			default:
			}
		}
		s.subMu.Unlock()
	}
}

// currentFrame returns the latest PNG frame, re-rendering it when the world
// revision moved since the last render. changed reports whether this call
// produced a new frame.
func (s *Server) currentFrame() (frame []byte, changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rev := s.world.Revision()
	if s.rendered && rev == s.frameRev {
		return s.frame, false
	}

	start := time.Now()
	img := render.WorldFrame(s.world, s.colors, s.scale)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Encoding an in-memory RGBA image only fails on a broken writer;
		// keep the previous frame.
		s.logger.Error("frame encode failed", "err", err)
		return s.frame, false
	}
	s.frame = buf.Bytes()
	s.frameRev = rev
	s.rendered = true
	s.logger.Debug("frame rendered",
		"bytes", len(s.frame),
		"population", s.world.Population(),
		"elapsed", time.Since(start))
	return s.frame, true
}

func (s *Server) subscribe() chan []byte {
	sub := make(chan []byte, 1)
	s.subMu.Lock()
	s.subs[sub] = struct{}{}
	s.subMu.Unlock()
	return sub
}

func (s *Server) unsubscribe(sub chan []byte) {
	s.subMu.Lock()
	delete(s.subs, sub)
	s.subMu.Unlock()
}

func (s *Server) serveFrame(w http.ResponseWriter, r *http.Request) {
	frame, _ := s.currentFrame()
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(frame); err != nil {
		s.logger.Debug("frame write failed", "err", err)
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer ws.Close()

	sub := s.subscribe()
	defer s.unsubscribe(sub)

	// Seed the client with the current frame so the page shows the world
	// before the first change.
	if frame, _ := s.currentFrame(); frame != nil {
		select {
		case sub <- frame:
		default:
		}
	}

	group, ctx := errgroup.WithContext(r.Context())
	group.Go(func() error { return s.readMessages(ws) })
	group.Go(func() error { return s.pingPong(ctx, ws) })
	group.Go(func() error { return s.publish(ctx, ws, sub) })

	if err := group.Wait(); err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		s.logger.Debug("client closed", "err", err)
	}
}

// readMessages drains the client so control frames are processed. Clients
// never send application data; any read error is a disconnect.
func (s *Server) readMessages(ws *websocket.Conn) error {
	ws.SetReadLimit(512)
	if err := ws.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return err
	}
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return err
		}
	}
}

func (s *Server) pingPong(ctx context.Context, ws *websocket.Conn) error {
	pinger := channerics.NewTicker(ctx.Done(), pingPeriod)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pinger:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		}
	}
}

func (s *Server) publish(ctx context.Context, ws *websocket.Conn, sub <-chan []byte) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case frame := <-sub:
			if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return err
			}
			if err := ws.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return err
			}
		}
	}
}

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
