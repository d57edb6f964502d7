package handler

import (
	"bytes"
	"io"
	"net/http"
)

// writeText renders a plain-text report into a buffer first so a render
// error can still become a 500 instead of a truncated 200.
func (s *Server) writeText(w http.ResponseWriter, r *http.Request, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.fail(w, r, err, "")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
