package proxy

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Supplier hands out proxies in round-robin order
type Supplier interface {
	Get() string
	Len() int
}

type supplier struct {
	proxies []string
	current int
	mutex   sync.Mutex
}

// Prober reports whether a proxy can reach the probe URL
type Prober func(ctx context.Context, proxyURL, probeURL string) bool

// NewSupplier keeps the proxies that pass probe, checked one by one in order
func NewSupplier(ctx context.Context, proxies []string, probeURL string, probe Prober) Supplier {
	if probe == nil {
		probe = IsProxyValid
	}

	valid := make([]string, 0, len(proxies))
	for i, proxyURL := range proxies {
		log.Debugf("🔄 Testing proxy %d/%d: %s", i+1, len(proxies), proxyURL)

		if probe(ctx, proxyURL, probeURL) {
			valid = append(valid, proxyURL)
			log.Infof("✅ Proxy %s is working", proxyURL)
		} else {
			log.Infof("❌ Proxy %s is not working, skipping", proxyURL)
		}
	}

	if len(proxies) > 0 {
		log.Infof("✅ Proxy supplier initialized with %d working proxies out of %d tested", len(valid), len(proxies))
	}

	return &supplier{proxies: valid}
}

// Get returns the next proxy URL, or "" when none are available
func (p *supplier) Get() string {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if len(p.proxies) == 0 {
		return ""
	}

	proxy := p.proxies[p.current]
	p.current = (p.current + 1) % len(p.proxies)

	return proxy
}

func (p *supplier) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return len(p.proxies)
}

// IsProxyValid makes one request to probeURL through proxyURL
func IsProxyValid(ctx context.Context, proxyURL, probeURL string) bool {
	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(0).
		SetProxy(proxyURL)
	defer client.Close()

	resp, err := client.R().
		SetContext(ctx).
		Get(probeURL)

	if err != nil {
		log.Infof("Proxy test failed for %s: %v", proxyURL, err)
		return false
	}

	if resp.IsError() {
		log.Infof("Proxy test failed for %s with status: %s", proxyURL, resp.Status())
		return false
	}

	return true
}
