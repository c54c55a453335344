// Package server owns the listening socket and the per-connection loop.
//
// Each accepted connection gets its own goroutine and exactly one
// read/route/write cycle: read up to one buffer of request bytes, parse,
// route, write the marshaled response, close. Connections share no mutable
// state; a failed read or write aborts only its own connection.
//
// Two limitations are deliberate, inherited behavior:
//
//   - The request must fit in one read. Anything past BufferSize bytes is
//     silently truncated, and a body split across reads is lost.
//   - No read or write deadlines are set, so a silent client parks its
//     goroutine until the peer goes away. Production hardening would add
//     per-connection timeouts here.
package server

import (
	"errors"
	"io"
	"net"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shapestone/shape-serve/pkg/message"
)

// DefaultBufferSize is the per-connection read buffer: one 4096-byte read
// per request, matching the server's original framing.
const DefaultBufferSize = 4096

// ErrServerClosed is returned by Serve and ListenAndServe after Close.
var ErrServerClosed = errors.New("server: closed")

// Handler routes one parsed request to one response.
// *routing.Router is the production implementation.
type Handler interface {
	Route(req *message.Request) *message.Response
}

// Server accepts connections and runs the read/route/write cycle on each.
//
// The zero value is not usable; populate Addr and Handler. Log is the
// injected observer for everything the server wants to say — pass
// zerolog.Nop() to run silently in tests.
type Server struct {
	Addr       string
	Handler    Handler
	Log        zerolog.Logger
	BufferSize int // read buffer size; DefaultBufferSize if 0

	mu sync.Mutex
	ln net.Listener
}

// ListenAndServe binds Addr and serves until Close. A bind failure is
// returned immediately; it is the only startup error and callers are
// expected to treat it as fatal.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.Log.Info().Str("addr", ln.Addr().String()).Msg("server is running and ready to accept connections")
	return s.Serve(ln)
}

// Serve accepts connections from ln until Close, spawning one goroutine
// per connection. Accept errors other than listener closure are logged
// and the loop continues.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return ErrServerClosed
			}
			s.Log.Error().Err(err).Msg("accept failed")
			continue
		}
		go s.handleConn(conn)
	}
}

// Close stops the accept loop. Connections already being handled finish on
// their own; nothing cancels an in-flight read or write.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	log := s.Log.With().
		Str("conn", uuid.NewString()).
		Str("remote", conn.RemoteAddr().String()).
		Logger()
	log.Info().Msg("new connection established")

	size := s.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}
	buf := make([]byte, size)

	n, err := conn.Read(buf)
	if err != nil {
		if err == io.EOF {
			log.Warn().Msg("connection closed by client")
		} else {
			log.Error().Err(err).Msg("failed to read request")
		}
		return
	}

	result := message.UnmarshalRequest(buf[:n])
	req := result.Request
	if len(result.Warnings) > 0 {
		log.Warn().Strs("warnings", result.Warnings).Msg("request parsed with warnings")
	}

	resp := s.Handler.Route(req)
	s.traceExchange(log, req, resp)

	wire, err := message.Marshal(resp)
	if err != nil {
		// Route is total and every response it builds has a status code,
		// so this only fires on a broken Handler implementation.
		log.Error().Err(err).Msg("failed to marshal response")
		return
	}

	if _, err := conn.Write(wire); err != nil {
		log.Error().Err(err).Msg("failed to send response")
		return
	}
	log.Info().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Msg("response successfully sent to client")
}

// traceExchange logs the full exchange at debug level, rendered through the
// shape-core node bridge so the output matches what shape tooling sees.
func (s *Server) traceExchange(log zerolog.Logger, req *message.Request, resp *message.Response) {
	if log.GetLevel() > zerolog.DebugLevel {
		return
	}
	log.Debug().
		Interface("request", message.NodeToValue(message.RequestToNode(req))).
		Interface("response", message.NodeToValue(message.ResponseToNode(resp))).
		Msg("exchange")
}
