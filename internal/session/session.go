// Package session holds transient display state for one dashboard session:
// the last generated analysis per briefing, the last forecast, and the
// API key the operator typed in. Nothing here survives a restart and nothing
// is written to the store.
package session

import "sync"

type Store struct {
	mu       sync.Mutex
	analyses map[int64]string
	forecast string
	apiKey   string
}

func New() *Store {
	return &Store{analyses: make(map[int64]string)}
}

func (s *Store) SetAnalysis(briefingID int64, text string) {
	s.mu.Lock()
	s.analyses[briefingID] = text
	s.mu.Unlock()
}

func (s *Store) Analysis(briefingID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.analyses[briefingID]
	return text, ok
}

// Analyses returns a copy of the id → text map so the render step can merge
// it into the briefing list without holding the lock.
func (s *Store) Analyses() map[int64]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]string, len(s.analyses))
	for k, v := range s.analyses {
		out[k] = v
	}
	return out
}

func (s *Store) SetForecast(text string) {
	s.mu.Lock()
	s.forecast = text
	s.mu.Unlock()
}

func (s *Store) Forecast() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forecast
}

func (s *Store) SetAPIKey(key string) {
	s.mu.Lock()
	s.apiKey = key
	s.mu.Unlock()
}

func (s *Store) APIKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKey
}

// Clear drops the generated texts when the store is reset. The API key stays:
// wiping data should not sign the operator out.
func (s *Store) Clear() {
	s.mu.Lock()
	s.analyses = make(map[int64]string)
	s.forecast = ""
	s.mu.Unlock()
}
