package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/search"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for substring search
type Server struct {
	searcher     search.Searcher
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a search server using stdin/stdout for IPC
func NewServer(searcher search.Searcher, cfg *config.Config) *Server {
	return NewServerWithIO(searcher, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a search server over arbitrary streams
func NewServerWithIO(searcher search.Searcher, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		searcher: searcher,
		config:   cfg,
		decoder:  msgpack.NewDecoder(r),
		encoder:  msgpack.NewEncoder(w),
	}
}

// Start sends the ready message and serves requests until the input closes.
func (s *Server) Start() error {
	log.Debug("Starting server")

	if err := s.encoder.Encode(map[string]string{"status": "ready"}); err != nil {
		return fmt.Errorf("failed to send ready message: %w", err)
	}

	for {
		// Decode one raw object first so a badly typed request does not
		// desynchronize the stream.
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			log.Errorf("Reading request: %v", err)
			return err
		}
		s.requestCount++

		var request Request
		if err := msgpack.Unmarshal(raw, &request); err != nil {
			log.Errorf("Unmarshaling request: %v", err)
			s.sendError("", "invalid request", CodeBadRequest)
			continue
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches on the request action
func (s *Server) handleRequest(request Request) {
	switch request.Action {
	case "", ActionSearch:
		s.handleSearch(request)
	case ActionInfo:
		s.handleInfo(request)
	default:
		s.sendError(request.ID, fmt.Sprintf("unknown action: %s", request.Action), CodeBadRequest)
	}
}

// handleSearch validates the query, clamps the limit and runs the lookup.
func (s *Server) handleSearch(request Request) {
	if len(request.Query) > s.config.Search.MaxQueryLen {
		log.Debugf("Query too long in request %s (%d bytes)", request.ID, len(request.Query))
		s.sendError(request.ID,
			fmt.Sprintf("query exceeds maximum length of %d bytes", s.config.Search.MaxQueryLen),
			CodeQueryTooLong)
		return
	}

	limit := request.Limit
	if limit < 1 || limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}

	start := time.Now()
	words, total := s.searcher.SearchLimit(request.Query, limit)
	elapsed := time.Since(start)
	log.Debugf("Query '%s' -> %d matches in %v", request.Query, total, elapsed)

	if words == nil {
		words = []string{}
	}
	s.sendResponse(SearchResponse{
		ID:        request.ID,
		Words:     words,
		Count:     total,
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleInfo reports index and cache statistics
func (s *Server) handleInfo(request Request) {
	stats := s.searcher.Stats()
	s.sendResponse(InfoResponse{
		ID:           request.ID,
		Status:       "ok",
		Words:        stats["words"],
		Nodes:        stats["nodes"],
		Postings:     stats["postings"],
		CacheEntries: stats["cacheEntries"],
		CacheHits:    stats["cacheHits"],
	})
}

// sendResponse encodes the given response and writes it to the client
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
