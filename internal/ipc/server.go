package ipc

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/helixml/led-coordinator/internal/coordinator"
	"github.com/helixml/led-coordinator/internal/queue"
)

// ErrSocketBindFailed wraps any failure to bind the IPC socket (§4.6, §7); it is
// fatal and prevents startup.
type ErrSocketBindFailed struct{ Err error }

func (e *ErrSocketBindFailed) Error() string { return "ipc: socket bind failed: " + e.Err.Error() }
func (e *ErrSocketBindFailed) Unwrap() error { return e.Err }

// SocketPermissions is the filesystem mode the socket is created with so unprivileged
// producers may connect (§6).
const SocketPermissions = 0666

// Server accepts client connections, parses framed JSON requests, and returns framed
// JSON responses (§4.6). It owns client connections and hands off decoded Commands to
// the queue, then routes responses back to the originating connection.
type Server struct {
	socketPath string
	listener   net.Listener
	queue      *queue.Queue
	logger     zerolog.Logger

	mu      sync.Mutex
	pending map[string]chan coordinator.Ack

	shuttingDown atomic.Bool
}

// NewServer returns a Server that will bind socketPath and enqueue decoded commands
// onto q.
func NewServer(socketPath string, q *queue.Queue, logger zerolog.Logger) *Server {
	return &Server{
		socketPath: socketPath,
		queue:      q,
		logger:     logger.With().Str("component", "ipc").Logger(),
		pending:    make(map[string]chan coordinator.Ack),
	}
}

// Send implements coordinator.AckSink: it routes an Ack back to the connection that
// submitted the command it acknowledges.
func (s *Server) Send(ack coordinator.Ack) {
	s.mu.Lock()
	ch, ok := s.pending[ack.ClientID]
	s.mu.Unlock()
	if ok {
		ch <- ack
	}
}

// ListenAndServe binds the socket and accepts connections until Close is called (the
// daemon calls it once a dispatched Shutdown has ended the worker loop). Bind failure
// is fatal (§4.6, §7).
func (s *Server) ListenAndServe() error {
	if dir := filepath.Dir(s.socketPath); dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &ErrSocketBindFailed{Err: err}
		}
	}
	_ = os.Remove(s.socketPath)

	ln, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return &ErrSocketBindFailed{Err: err}
	}
	if err := os.Chmod(s.socketPath, SocketPermissions); err != nil {
		s.logger.Warn().Err(err).Msg("failed to chmod socket")
	}
	s.listener = ln

	s.logger.Info().Str("socket", s.socketPath).Msg("ipc server listening")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.shuttingDown.Load() {
				s.logger.Info().Msg("ipc server stopping (shutdown)")
				return nil
			}
			// Accept failure of an individual connection is logged; the server
			// continues (§4.6).
			s.logger.Warn().Err(err).Msg("accept error")
			continue
		}
		go s.handleConn(conn)
	}
}

// Close stops accepting new connections and closes the listener. Safe to call more
// than once.
func (s *Server) Close() {
	s.shuttingDown.Store(true)
	if s.listener != nil {
		_ = s.listener.Close()
	}
	_ = os.Remove(s.socketPath)
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	clientID := uuid.NewString()
	ackCh := make(chan coordinator.Ack, 1)
	s.mu.Lock()
	s.pending[clientID] = ackCh
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.pending, clientID)
		s.mu.Unlock()
	}()

	writer := bufio.NewWriter(conn)
	scanner := bufio.NewScanner(conn)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			writeResponse(writer, errResponse(ErrInvalidParams, "malformed JSON: "+err.Error()))
			// A malformed message closes the connection after writing an error
			// response (§4.6, §8 scenario 6).
			return
		}

		cmd, code, verr := toCommand(req, clientID)
		if verr != nil {
			writeResponse(writer, errResponse(code, verr.Error()))
			continue
		}

		if cmd.Kind == queue.KindShutdown {
			s.shuttingDown.Store(true)
		}

		if err := s.queue.Push(cmd); err != nil {
			writeResponse(writer, errResponse(ErrQueueFull, err.Error()))
			continue
		}

		ack := <-ackCh
		resp := Response{Success: ack.Success, Message: ack.Message}
		if ack.Error != "" {
			e := ack.Error
			resp.Error = &e
		}
		writeResponse(writer, resp)

		if cmd.Kind == queue.KindShutdown {
			return
		}
	}
}

func writeResponse(w *bufio.Writer, resp Response) {
	b, err := json.Marshal(resp)
	if err != nil {
		return
	}
	b = append(b, '\n')
	_, _ = w.Write(b)
	_ = w.Flush()
}
