// Package postgresttest ofrece un backend PostgREST en memoria para tests.
package postgresttest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/goccy/go-json"
)

type Row = map[string]any

// Server implementa GET/POST/PATCH con filtros eq. sobre tablas en memoria.
type Server struct {
	*httptest.Server

	APIKey string
	Token  string

	mu       sync.Mutex
	tables   map[string][]Row
	nextID   map[string]int64
	calls    map[string]int
	failures map[string][]int
	delay    time.Duration
}

func NewServer(apiKey, token string) *Server {
	s := &Server{
		APIKey:   apiKey,
		Token:    token,
		tables:   map[string][]Row{},
		nextID:   map[string]int64{},
		calls:    map[string]int{},
		failures: map[string][]int{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Seed agrega filas a una tabla; las que no traen id reciben uno.
func (s *Server) Seed(table string, rows ...Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		s.insertLocked(table, r)
	}
}

// FailNext hace que las próximas n llamadas a method+table respondan status.
func (s *Server) FailNext(method, table string, status, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " /" + table
	for i := 0; i < n; i++ {
		s.failures[key] = append(s.failures[key], status)
	}
}

// SetDelay retrasa todas las respuestas.
func (s *Server) SetDelay(d time.Duration) {
	s.mu.Lock()
	s.delay = d
	s.mu.Unlock()
}

// Calls devuelve cuántas veces se llamó method+table.
func (s *Server) Calls(method, table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method+" /"+table]
}

func (s *Server) Rows(table string) []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Row, len(s.tables[table]))
	copy(out, s.tables[table])
	return out
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("apikey") != s.APIKey || r.Header.Get("Authorization") != "Bearer "+s.Token {
		writeJSON(w, http.StatusUnauthorized, Row{"message": "invalid credentials"})
		return
	}

	table := strings.Trim(r.URL.Path, "/")
	key := r.Method + " /" + table

	s.mu.Lock()
	s.calls[key]++
	delay := s.delay
	var fail int
	if q := s.failures[key]; len(q) > 0 {
		fail, s.failures[key] = q[0], q[1:]
	}
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}
	if fail != 0 {
		writeJSON(w, fail, Row{"message": "injected failure"})
		return
	}

	filters := map[string]string{}
	for field, values := range r.URL.Query() {
		if len(values) > 0 && strings.HasPrefix(values[0], "eq.") {
			filters[field] = strings.TrimPrefix(values[0], "eq.")
		}
	}
	representation := r.Header.Get("Prefer") == "return=representation"

	switch r.Method {
	case http.MethodGet:
		s.mu.Lock()
		out := s.matchLocked(table, filters)
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, out)

	case http.MethodPost:
		body, ok := decode(w, r)
		if !ok {
			return
		}
		s.mu.Lock()
		row := s.insertLocked(table, body)
		s.mu.Unlock()
		if representation {
			writeJSON(w, http.StatusCreated, []Row{row})
			return
		}
		w.WriteHeader(http.StatusCreated)

	case http.MethodPatch:
		body, ok := decode(w, r)
		if !ok {
			return
		}
		s.mu.Lock()
		var updated []Row
		for _, row := range s.tables[table] {
			if matches(row, filters) {
				for k, v := range body {
					row[k] = v
				}
				updated = append(updated, cloneRow(row))
			}
		}
		s.mu.Unlock()
		if updated == nil {
			updated = []Row{}
		}
		if representation {
			writeJSON(w, http.StatusOK, updated)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeJSON(w, http.StatusMethodNotAllowed, Row{"message": "method not allowed"})
	}
}

func (s *Server) insertLocked(table string, r Row) Row {
	row := cloneRow(r)
	if _, ok := row["id"]; !ok {
		s.nextID[table]++
		row["id"] = s.nextID[table]
	} else if id, ok := toInt(row["id"]); ok && id > s.nextID[table] {
		s.nextID[table] = id
	}
	if _, ok := row["created_at"]; !ok {
		row["created_at"] = time.Now().UTC().Format(time.RFC3339)
	}
	if table == "stores" {
		if _, ok := row["slug"]; !ok {
			row["slug"] = fmt.Sprintf("%s-%v", slugify(fmt.Sprint(row["name"])), row["id"])
		}
		if _, ok := row["status"]; !ok {
			row["status"] = true
		}
	}
	s.tables[table] = append(s.tables[table], row)
	return cloneRow(row)
}

func (s *Server) matchLocked(table string, filters map[string]string) []Row {
	out := []Row{}
	for _, row := range s.tables[table] {
		if matches(row, filters) {
			out = append(out, cloneRow(row))
		}
	}
	return out
}

func matches(row Row, filters map[string]string) bool {
	for field, want := range filters {
		if fmt.Sprint(row[field]) != want {
			return false
		}
	}
	return true
}

func decode(w http.ResponseWriter, r *http.Request) (Row, bool) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Row{"message": err.Error()})
		return nil, false
	}
	var body Row
	if err := json.Unmarshal(data, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Row{"message": "invalid json"})
		return nil, false
	}
	return body, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func cloneRow(r Row) Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			b.WriteRune('-')
		}
	}
	return b.String()
}
