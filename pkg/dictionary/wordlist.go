/*
Package dictionary reads newline-delimited word lists.

Each line, with its trailing line terminator removed, is one word. Order and
duplicates are preserved exactly as read: the position of a line becomes the
word index used by the search index. Nothing is sorted, trimmed or folded.

	words, err := dictionary.Load("words.txt", dictionary.WithEncoding("latin1"))
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

Any read or decode failure is returned before a single word is handed out, so
an index is never built from a partially read file.
*/
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

type loadOptions struct {
	encoding string
	maxWords int
}

// LoadOption configures Load and Read.
type LoadOption func(*loadOptions)

// WithEncoding sets the source encoding (utf-8, latin1 or windows-1252).
func WithEncoding(name string) LoadOption {
	return func(o *loadOptions) {
		o.encoding = name
	}
}

// WithMaxWords stops reading after n words. Zero means no limit.
func WithMaxWords(n int) LoadOption {
	return func(o *loadOptions) {
		o.maxWords = n
	}
}

// Load validates and reads the word list at path.
func Load(path string, opts ...LoadOption) ([]string, error) {
	if err := ValidateFileFormat(path, FormatText); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	start := time.Now()
	words, err := Read(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s in %v", len(words), path, time.Since(start))
	return words, nil
}

// Read parses a word list from r.
func Read(r io.Reader, opts ...LoadOption) ([]string, error) {
	o := loadOptions{encoding: EncodingUTF8}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxWords < 0 {
		return nil, fmt.Errorf("invalid word limit %d", o.maxWords)
	}

	src, err := decoder(r, o.encoding)
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(src)
	var words []string
	for o.maxWords == 0 || len(words) < o.maxWords {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("line %d: %w", len(words)+1, err)
		}
		if err == io.EOF && line == "" {
			break
		}
		words = append(words, trimLineEnding(line))
		if err == io.EOF {
			break
		}
	}
	return words, nil
}

// trimLineEnding removes one trailing "\n" or "\r\n".
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
