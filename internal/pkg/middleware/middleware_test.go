//go:build unit
// +build unit

package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logRecord struct {
	mu    sync.Mutex
	lines map[string][]string
}

// recordingLogger prefixes each line with its With attributes as key=value.
type recordingLogger struct {
	rec   *logRecord
	attrs string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{rec: &logRecord{lines: map[string][]string{}}}
}

func (l *recordingLogger) record(level string, args ...interface{}) {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	l.rec.lines[level] = append(l.rec.lines[level], l.attrs+fmt.Sprint(args...))
}

func (l *recordingLogger) lines(level string) []string {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	return l.rec.lines[level]
}

func (l *recordingLogger) Debug(args ...interface{}) { l.record("debug", args...) }
func (l *recordingLogger) Info(args ...interface{})  { l.record("info", args...) }
func (l *recordingLogger) Warn(args ...interface{})  { l.record("warn", args...) }
func (l *recordingLogger) Error(args ...interface{}) { l.record("error", args...) }
func (l *recordingLogger) Fatal(args ...interface{}) { l.record("fatal", args...) }
func (l *recordingLogger) Panic(args ...interface{}) { l.record("panic", args...) }

func (l *recordingLogger) With(args ...interface{}) logger.Logger {
	attrs := l.attrs
	for i := 0; i+1 < len(args); i += 2 {
		attrs += fmt.Sprintf("%v=%v ", args[i], args[i+1])
	}
	return &recordingLogger{rec: l.rec, attrs: attrs}
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString(RequestIDKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestAccessLog_LevelsByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := newRecordingLogger()

	r := gin.New()
	r.Use(RequestID(), AccessLog(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, log.lines("info"), 1)
	assert.Contains(t, log.lines("info")[0], "path=/ok status=200")
	require.Len(t, log.lines("error"), 1)
	assert.Contains(t, log.lines("error")[0], "path=/boom status=500")
}

func TestAccessLog_ScopesLoggerToRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := newRecordingLogger()

	r := gin.New()
	r.Use(RequestID(), AccessLog(log))
	r.GET("/persons", func(c *gin.Context) {
		logger.FromContext(c.Request.Context(), log).Info("listing persons")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/persons", nil)
	req.Header.Set(RequestIDHeader, "req-55")
	r.ServeHTTP(httptest.NewRecorder(), req)

	info := log.lines("info")
	require.Len(t, info, 2)
	assert.Equal(t, "request_id=req-55 listing persons", info[0])
	assert.Contains(t, info[1], "request_id=req-55 method=GET path=/persons status=200")
}
