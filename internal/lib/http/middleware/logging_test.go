package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (c *captureLogger) add(level, msg string, fields ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, fmt.Sprint(level, " ", msg, " ", fields))
}

func (c *captureLogger) Debug(msg string, fields ...any) { c.add("DEBUG", msg, fields...) }
func (c *captureLogger) Info(msg string, fields ...any)  { c.add("INFO", msg, fields...) }
func (c *captureLogger) Warn(msg string, fields ...any)  { c.add("WARN", msg, fields...) }
func (c *captureLogger) Error(msg string, fields ...any) { c.add("ERROR", msg, fields...) }
func (c *captureLogger) DebugContext(_ context.Context, msg string, fields ...any) {
	c.add("DEBUG", msg, fields...)
}
func (c *captureLogger) InfoContext(_ context.Context, msg string, fields ...any) {
	c.add("INFO", msg, fields...)
}
func (c *captureLogger) WarnContext(_ context.Context, msg string, fields ...any) {
	c.add("WARN", msg, fields...)
}
func (c *captureLogger) ErrorContext(_ context.Context, msg string, fields ...any) {
	c.add("ERROR", msg, fields...)
}

func TestLoggingRecordsRequestBeforeDispatch(t *testing.T) {
	log := &captureLogger{}

	var linesAtDispatch int
	handler := Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		linesAtDispatch = len(log.lines)
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/orders/abc", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, 1, linesAtDispatch)
	require.Len(t, log.lines, 2)
	require.Contains(t, log.lines[0], "DELETE")
	require.Contains(t, log.lines[0], "/orders/abc")
}
