package memory

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p := New()

	if _, ok, err := p.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("Get empty: ok=%v err=%v", ok, err)
	}

	if ok, err := p.Set(ctx, "k", []byte("v"), 1, 0); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	got, ok, err := p.Get(ctx, "k")
	if err != nil || !ok || !bytes.Equal(got, []byte("v")) {
		t.Fatalf("Get: %q ok=%v err=%v", got, ok, err)
	}
	if p.Len() != 1 {
		t.Fatalf("Len = %d", p.Len())
	}

	if err := p.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := p.Get(ctx, "k"); ok {
		t.Fatalf("entry survived Del")
	}
}

func TestTTL(t *testing.T) {
	ctx := context.Background()
	p := New()

	if _, err := p.Set(ctx, "k", []byte("v"), 1, time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, ok, _ := p.Get(ctx, "k"); ok {
		t.Fatalf("expired entry still readable")
	}
}

func TestCloseDropsEntries(t *testing.T) {
	ctx := context.Background()
	p := New()
	p.Set(ctx, "a", []byte("1"), 1, 0)
	p.Set(ctx, "b", []byte("2"), 1, 0)
	if err := p.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if p.Len() != 0 {
		t.Fatalf("Len after Close = %d", p.Len())
	}
}
