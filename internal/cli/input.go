// Package cli handles cmd line input for querying the index line by line, mostly for DBG and testing
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordfind/internal/logger"
	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/search"
	"github.com/charmbracelet/log"
)

const (
	highlightStart = "\033[38;5;75m"
	highlightEnd   = "\033[0m"
)

// InputHandler reads one query per line and prints the words containing it.
type InputHandler struct {
	searcher     search.Searcher
	maxQueryLen  int
	resultLimit  int
	requestCount int
	out          *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(searcher search.Searcher, maxQueryLen, limit int) *InputHandler {
	return &InputHandler{
		searcher:    searcher,
		maxQueryLen: maxQueryLen,
		resultLimit: limit,
	}
}

// Start runs the loop on stdin/stdout.
func (h *InputHandler) Start() error {
	return h.Run(os.Stdin, os.Stdout)
}

// Run prompts for input, reads a line from r and prints results to w.
// It returns nil once r is exhausted.
func (h *InputHandler) Run(r io.Reader, w io.Writer) error {
	h.out = logger.New(w, "")
	h.out.Print("wordfind CLI")
	h.out.Print("type a fragment and press Enter to list words containing it (Ctrl+C to exit):")

	reader := bufio.NewReader(r)
	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		// Only the line terminator is removed; spaces are part of the query.
		query := strings.TrimRight(line, "\r\n")
		if query != "" {
			h.handleInput(query)
		}
		if err != nil {
			return nil
		}
	}
}

// handleInput runs a single query and prints up to resultLimit matches
// with the matched span highlighted.
func (h *InputHandler) handleInput(query string) {
	h.requestCount++

	if len(query) > h.maxQueryLen {
		h.out.Errorf("Query too long (%d > %d bytes)", len(query), h.maxQueryLen)
		return
	}

	start := time.Now()
	matches, total := h.searcher.Matches(query, h.resultLimit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if total == 0 {
		h.out.Warnf("No words contain '%s'", query)
		return
	}

	h.out.Printf("Found %s words containing '%s':", utils.FormatWithCommas(total), query)
	for i, m := range matches {
		h.out.Printf("%2d. %s", i+1, highlight(m))
	}
	if total > len(matches) {
		h.out.Printf("... and %s more", utils.FormatWithCommas(total-len(matches)))
	}
}

// highlight wraps the matched span of m in ANSI color codes.
func highlight(m search.Match) string {
	if m.Start < 0 {
		return m.Word
	}
	return fmt.Sprintf("%s%s%s%s%s",
		m.Word[:m.Start], highlightStart, m.Word[m.Start:m.End], highlightEnd, m.Word[m.End:])
}
