// Package viewer streams generated world data to external viewers over
// websocket. It is a one-way data handoff: static meshes are sent on
// connect, frame snapshots are broadcast as the simulation publishes
// them. The viewer never mutates world state.
package viewer

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// MeshData is the wire form of one mesh.
type MeshData struct {
	Type      string       `json:"type"` // always "mesh"
	Name      string       `json:"name"`
	ID        uint64       `json:"id"`
	Positions [][3]float32 `json:"positions"`
	Normals   [][3]float32 `json:"normals"`
	UVs       [][2]float32 `json:"uvs"`
	Indices   []uint16     `json:"indices"`
}

// InstanceData is one placed vegetation instance.
type InstanceData struct {
	Transform    [16]float32 `json:"transform"`
	Color        [3]float32  `json:"color"`
	FadeAlpha    float32     `json:"fadeAlpha"`
	TextureIndex int32       `json:"textureIndex"`
}

// PlayerData is the character frame for the camera on the viewer side.
type PlayerData struct {
	Position [3]float32 `json:"position"`
	Forward  [3]float32 `json:"forward"`
	Up       [3]float32 `json:"up"`
}

// FrameData is one simulation frame snapshot.
type FrameData struct {
	Type       string                    `json:"type"` // always "frame"
	Player     PlayerData                `json:"player"`
	GrassTiers map[string][]InstanceData `json:"grassTiers"`
	Trees      []InstanceData            `json:"trees"`
}

// Server accepts websocket viewers and fans frame snapshots out to
// them.
type Server struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
	meshes  []MeshData
	frame   *FrameData

	httpServer *http.Server
}

// New creates a viewer server. logger must not be nil.
func New(listen string, logger *zap.Logger) *Server {
	s := &Server{
		logger: logger,
		upgrader: websocket.Upgrader{
			// Viewers connect from arbitrary local tooling.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	s.httpServer = &http.Server{Addr: listen, Handler: mux}
	return s
}

// Handler exposes the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// SetMeshes stores the static meshes sent to every new viewer.
func (s *Server) SetMeshes(meshes []MeshData) {
	for i := range meshes {
		meshes[i].Type = "mesh"
	}
	s.mu.Lock()
	s.meshes = meshes
	s.mu.Unlock()
}

// PublishFrame broadcasts a frame snapshot to all connected viewers and
// keeps it for viewers that connect later.
func (s *Server) PublishFrame(frame FrameData) {
	frame.Type = "frame"

	s.mu.Lock()
	s.frame = &frame
	conns := make(map[*websocket.Conn]*sync.Mutex, len(s.clients))
	for conn, mu := range s.clients {
		conns[conn] = mu
	}
	s.mu.Unlock()

	var dead []*websocket.Conn
	for conn, mu := range conns {
		mu.Lock()
		err := conn.WriteJSON(&frame)
		mu.Unlock()
		if err != nil {
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		s.dropClient(conn)
	}
}

// ClientCount returns the number of connected viewers.
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// ListenAndServe serves until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("viewer server listening", zap.String("addr", s.httpServer.Addr))
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		_ = s.httpServer.Close()
		<-errCh
		return nil
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("viewer server failed: %w", err)
		}
		return nil
	}
}

// Close shuts the server down and disconnects all viewers.
func (s *Server) Close() error {
	s.mu.Lock()
	for conn := range s.clients {
		_ = conn.Close()
	}
	s.clients = make(map[*websocket.Conn]*sync.Mutex)
	s.mu.Unlock()
	return s.httpServer.Close()
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	connMu := &sync.Mutex{}
	s.mu.Lock()
	s.clients[conn] = connMu
	meshes := s.meshes
	frame := s.frame
	s.mu.Unlock()

	s.logger.Info("viewer connected", zap.String("remote", conn.RemoteAddr().String()))

	// Send the static world once, then the latest frame if one exists.
	connMu.Lock()
	for i := range meshes {
		if err = conn.WriteJSON(&meshes[i]); err != nil {
			break
		}
	}
	if err == nil && frame != nil {
		err = conn.WriteJSON(frame)
	}
	connMu.Unlock()
	if err != nil {
		s.logger.Warn("initial send failed", zap.Error(err))
		s.dropClient(conn)
		return
	}

	// Drain incoming messages until the viewer goes away. Viewers have
	// nothing to say; reads only detect disconnects.
	go func() {
		defer s.dropClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.mu.Lock()
	_, ok := s.clients[conn]
	delete(s.clients, conn)
	s.mu.Unlock()
	if ok {
		_ = conn.Close()
		s.logger.Info("viewer disconnected", zap.String("remote", conn.RemoteAddr().String()))
	}
}
