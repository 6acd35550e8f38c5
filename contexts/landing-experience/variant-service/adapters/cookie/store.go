package cookie

import (
	"context"
	"net/http"
	"time"
)

// Store adapts one request/response pair to the preference store port. The
// visitor's cookie jar is the durable client state the resolver reads and
// writes.
type Store struct {
	Request *http.Request
	Writer  http.ResponseWriter
	TTL     time.Duration
}

func NewStore(w http.ResponseWriter, r *http.Request) *Store {
	return &Store{
		Request: r,
		Writer:  w,
		TTL:     365 * 24 * time.Hour,
	}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	c, err := s.Request.Cookie(key)
	if err != nil {
		return "", false, nil
	}
	return c.Value, c.Value != "", nil
}

func (s *Store) Put(_ context.Context, key string, value string) error {
	http.SetCookie(s.Writer, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.TTL / time.Second),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
