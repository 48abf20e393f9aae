package browser

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultCheckURL = "https://ip.decodo.com/json"

type ProxyConfig struct {
	Host  string
	User  string
	Pass  string
	Ports []string
}

// ProxyPool is the set of proxy endpoints that answered the probe. It is
// populated once at startup and read-only afterwards; an empty pool means
// direct connection. Probing never fails the caller.
type ProxyPool struct {
	urls []string
}

// Next picks one working proxy at random, or "" for a direct connection.
func (p *ProxyPool) Next() string {
	if p == nil || len(p.urls) == 0 {
		return ""
	}
	return p.urls[rand.Intn(len(p.urls))]
}

func (p *ProxyPool) Size() int {
	if p == nil {
		return 0
	}
	return len(p.urls)
}

// Prober tests each configured proxy port once against a known endpoint.
type Prober struct {
	Log      *zap.Logger
	CheckURL string        // defaults to an IP echo service
	Timeout  time.Duration // per-port; defaults to 10s
}

// Probe walks the configured ports in order and keeps every port that can
// complete a request. A host-less config or zero working ports yields an
// empty pool, never an error: the grid source falls back to direct
// connections.
func (p Prober) Probe(ctx context.Context, cfg ProxyConfig) *ProxyPool {
	pool := &ProxyPool{}
	if cfg.Host == "" {
		return pool
	}

	checkURL := p.CheckURL
	if checkURL == "" {
		checkURL = defaultCheckURL
	}
	timeout := p.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	for _, port := range cfg.Ports {
		proxyURL := fmt.Sprintf("http://%s:%s@%s:%s", cfg.User, cfg.Pass, cfg.Host, port)
		if err := p.check(ctx, proxyURL, checkURL, timeout); err != nil {
			p.Log.Warn("proxy port failed probe", zap.String("port", port), zap.Error(err))
			continue
		}
		p.Log.Info("proxy port ok", zap.String("port", port))
		pool.urls = append(pool.urls, proxyURL)
	}

	if len(pool.urls) == 0 {
		p.Log.Warn("no working proxy ports, using direct connection")
	}
	return pool
}

func (p Prober) check(ctx context.Context, proxyURL, checkURL string, timeout time.Duration) error {
	u, err := url.Parse(proxyURL)
	if err != nil {
		return err
	}
	client := &http.Client{
		Timeout:   timeout,
		Transport: &http.Transport{Proxy: http.ProxyURL(u)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, checkURL, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("probe status %d", resp.StatusCode)
	}
	return nil
}
