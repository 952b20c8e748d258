// Package memory is an in-process map-backed provider. It is the
// default for tests and single-process use; it holds every entry until
// TTL expiry or Del, with no size bounding. Use bigcache or ristretto
// when memory pressure matters.
package memory

import (
	"context"
	"sync"
	"time"

	pr "github.com/unkn0wn-root/bytekit/provider"
)

type entry struct {
	value []byte
	exp   time.Time // zero => no TTL
}

type Provider struct {
	mu sync.RWMutex
	m  map[string]entry
}

var _ pr.Provider = (*Provider)(nil)

func New() *Provider {
	return &Provider{m: make(map[string]entry)}
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	p.mu.RLock()
	e, ok := p.m[key]
	p.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		p.mu.Lock()
		delete(p.m, key)
		p.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

func (p *Provider) Set(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	p.mu.Lock()
	p.m[key] = entry{value: value, exp: exp}
	p.mu.Unlock()
	return true, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.mu.Lock()
	delete(p.m, key)
	p.mu.Unlock()
	return nil
}

func (p *Provider) Close(_ context.Context) error {
	p.mu.Lock()
	p.m = make(map[string]entry)
	p.mu.Unlock()
	return nil
}

// Len reports the live entry count (expired entries may still be
// counted until their next Get).
func (p *Provider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.m)
}
