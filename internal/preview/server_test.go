package preview

import (
	"compress/gzip"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-pack-config/internal/logger"
	"github.com/MKhiriev/go-pack-config/internal/mock"
	"github.com/MKhiriev/go-pack-config/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func newBuildDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html>app</html>")
	writeFile(t, dir, "static/js/app.js", "console.log('app')")
	return dir
}

func newTestServer(t *testing.T, root string, opts ...Option) *Server {
	t.Helper()
	ctrl := gomock.NewController(t)
	s, err := NewServer(root, "127.0.0.1", mock.NewMockPortNegotiator(ctrl), logger.Nop(), opts...)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, h http.Handler, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ── routes ────────────────────────────────────────────────────────────────────

func TestHandler_Static(t *testing.T) {
	h := newTestServer(t, newBuildDir(t)).Handler()

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "root serves index", target: "/", wantStatus: http.StatusOK, wantBody: "<html>app</html>"},
		{name: "asset", target: "/static/js/app.js", wantStatus: http.StatusOK, wantBody: "console.log('app')"},
		{name: "client route falls back to index", target: "/users/42", wantStatus: http.StatusOK, wantBody: "<html>app</html>"},
		{name: "missing asset is not found", target: "/static/js/missing.js", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_GZip(t *testing.T) {
	h := newTestServer(t, newBuildDir(t)).Handler()

	rec := get(t, h, "/static/js/app.js", map[string]string{"Accept-Encoding": "gzip, deflate"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Empty(t, rec.Header().Get("Content-Length"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "console.log('app')", string(body))

	plain := get(t, h, "/static/js/app.js", nil)
	assert.Empty(t, plain.Header().Get("Content-Encoding"))
	assert.Equal(t, "console.log('app')", plain.Body.String())
}

func TestHandler_RequestID(t *testing.T) {
	h := newTestServer(t, newBuildDir(t)).Handler()

	rec := get(t, h, "/", nil)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	rec = get(t, h, "/", map[string]string{requestIDHeader: "abc"})
	assert.Equal(t, "abc", rec.Header().Get(requestIDHeader))
}

func TestHandler_ConfigTree(t *testing.T) {
	root := newBuildDir(t)

	rec := get(t, newTestServer(t, root).Handler(), ConfigPath, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	cfgTree := tree.Map{"module": tree.Map{"rules": tree.Seq{tree.Map{"test": tree.NewPattern(`\.css$`)}}}}
	rec = get(t, newTestServer(t, root, WithConfigTree(cfgTree)).Handler(), ConfigPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"module":{"rules":[{"test":"/\\.css$/"}]}}`, rec.Body.String())
}

// ── NewServer ─────────────────────────────────────────────────────────────────

func TestNewServer_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	negotiator := mock.NewMockPortNegotiator(ctrl)

	_, err := NewServer(filepath.Join(t.TempDir(), "missing"), "127.0.0.1", negotiator, nil)
	assert.ErrorIs(t, err, ErrNoRoot)

	_, err = NewServer(t.TempDir(), "127.0.0.1", negotiator, nil)
	assert.ErrorIs(t, err, ErrNoIndex)

	_, err = NewServer(newBuildDir(t), "127.0.0.1", nil, nil)
	assert.ErrorIs(t, err, ErrNoNegotiator)
}

// ── Run ───────────────────────────────────────────────────────────────────────

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	p := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return p
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	negotiator := mock.NewMockPortNegotiator(ctrl)
	p := freePort(t)
	negotiator.EXPECT().Negotiate(gomock.Any(), 8080).Return(p, nil)

	s, err := NewServer(newBuildDir(t), "127.0.0.1", negotiator, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	urls := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, 8080, func(url string) { urls <- url })
	}()

	var url string
	select {
	case url = <-urls:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get(url + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<html>app</html>", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_NegotiationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	negotiator := mock.NewMockPortNegotiator(ctrl)
	negotiator.EXPECT().Negotiate(gomock.Any(), 8080).Return(0, assert.AnError)

	s, err := NewServer(newBuildDir(t), "127.0.0.1", negotiator, nil)
	require.NoError(t, err)

	err = s.Run(context.Background(), 8080, nil)
	assert.ErrorIs(t, err, assert.AnError)
}
