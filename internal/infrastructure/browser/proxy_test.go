package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

// The prober routes its check request through each candidate proxy, so a
// plain HTTP server standing in as the proxy sees the absolute-URI request
// and can answer it directly.
func TestProbeKeepsWorkingPorts(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer proxy.Close()

	u, err := url.Parse(proxy.URL)
	if err != nil {
		t.Fatal(err)
	}
	host, port, ok := strings.Cut(u.Host, ":")
	if !ok {
		t.Fatalf("unexpected test server host %q", u.Host)
	}

	p := Prober{
		Log:      zap.NewNop(),
		CheckURL: "http://grid.example/json",
		Timeout:  2 * time.Second,
	}
	pool := p.Probe(context.Background(), ProxyConfig{
		Host:  host,
		User:  "user",
		Pass:  "pass",
		Ports: []string{port, "1"}, // port 1 has no listener
	})

	if pool.Size() != 1 {
		t.Fatalf("pool size = %d, want 1 working port", pool.Size())
	}
	if next := pool.Next(); !strings.Contains(next, ":"+port) {
		t.Errorf("Next() = %q, want the working port %s", next, port)
	}
}

func TestProbeWithoutHostMeansDirect(t *testing.T) {
	p := Prober{Log: zap.NewNop()}
	pool := p.Probe(context.Background(), ProxyConfig{Ports: []string{"10001"}})
	if pool.Size() != 0 {
		t.Errorf("pool size = %d, want 0", pool.Size())
	}
	if pool.Next() != "" {
		t.Errorf("Next() = %q, want empty for direct connection", pool.Next())
	}
}

func TestNilPoolIsDirect(t *testing.T) {
	var pool *ProxyPool
	if pool.Next() != "" {
		t.Error("nil pool must mean direct connection")
	}
}

func TestProbeRejectsBadStatus(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer proxy.Close()

	u, _ := url.Parse(proxy.URL)
	host, port, _ := strings.Cut(u.Host, ":")

	p := Prober{Log: zap.NewNop(), CheckURL: "http://grid.example/json", Timeout: 2 * time.Second}
	pool := p.Probe(context.Background(), ProxyConfig{Host: host, Ports: []string{port}})
	if pool.Size() != 0 {
		t.Errorf("pool size = %d, want 0 for non-200 probe", pool.Size())
	}
}
