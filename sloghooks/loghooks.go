// Package sloghooks is a log/slog sink for bytekit.Hooks. Refs are
// content digests, not secrets, so they are logged as-is unless a
// Redact function is supplied.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/bytekit"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery uint64
	// Optional ref redactor, for deployments where refs leak layout.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
}

var _ bytekit.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) ref(r string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(r)
	}
	return r
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(ref, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("bytekit.self_heal",
		"ref", h.ref(ref),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(ref string) {
	if h.l == nil {
		return
	}
	h.l.Warn("bytekit.provider_set_rejected",
		"ref", h.ref(ref))
}

func (h *Hooks) DecodeError(ref string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("bytekit.decode_error",
		"ref", h.ref(ref),
		"err", err)
}
