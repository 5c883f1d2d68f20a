/*
Package server implements msgpack IPC for substring search.

The server reads msgpack messages from stdin and writes one msgpack response
per request to stdout. Every message carries an ID which is echoed back.

# IPC

Search requests carry the query fragment and an optional limit:

	{"id": "req_001", "q": "qui", "l": 20}

The response lists matching words in dictionary order, the total number of
matches (which may exceed the returned slice) and the lookup time in
microseconds:

	{"id": "req_001", "s": ["squire", "acquire"], "c": 2, "t": 12}

An empty query is valid and matches nothing. Index statistics are available
through the info action:

	{"id": "info_001", "action": "info"}

Malformed requests get an error message instead of a response:

	{"id": "req_002", "e": "query exceeds maximum length of 64 bytes", "c": 413}

A `{"status": "ready"}` message is sent once before the first request is read.
*/
package server

// Request is the envelope for every incoming message. Action selects the
// operation; an empty action means search.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Query  string `msgpack:"q"`
	Limit  int    `msgpack:"l,omitempty"`
}

// SearchResponse - search results
type SearchResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// InfoResponse - index and cache statistics
type InfoResponse struct {
	ID           string `msgpack:"id"`
	Status       string `msgpack:"status"`
	Words        int    `msgpack:"words"`
	Nodes        int    `msgpack:"nodes"`
	Postings     int    `msgpack:"postings"`
	CacheEntries int    `msgpack:"cache_entries"`
	CacheHits    int    `msgpack:"cache_hits"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// Status codes used in ErrorResponse.
const (
	CodeBadRequest    = 400
	CodeQueryTooLong  = 413
	CodeInternalError = 500
)

const (
	ActionSearch = "search"
	ActionInfo   = "info"
)
