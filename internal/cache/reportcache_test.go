package cache

import (
	"context"
	"testing"
)

func TestKeyFrom(t *testing.T) {
	a := KeyFrom("model-a", "prompt")
	b := KeyFrom("model-a", "prompt")
	if a != b {
		t.Fatalf("same inputs produced different keys: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("key length: got %d", len(a))
	}
	if KeyFrom("model-b", "prompt") == a {
		t.Fatalf("model change did not change key")
	}
	if KeyFrom("model-a", "other prompt") == a {
		t.Fatalf("prompt change did not change key")
	}
}

func TestReportCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := &ReportCache{Dir: t.TempDir()}
	key := KeyFrom("m", "p")

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("miss: ok=%v err=%v", ok, err)
	}
	if err := c.Save(ctx, key, "# Report\nbody"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("hit: ok=%v err=%v", ok, err)
	}
	if got != "# Report\nbody" {
		t.Fatalf("content: got %q", got)
	}
}

func TestReportCache_Unconfigured(t *testing.T) {
	ctx := context.Background()
	var c *ReportCache
	if _, _, err := c.Get(ctx, "k"); err == nil {
		t.Fatalf("nil cache: expected error")
	}
	empty := &ReportCache{}
	if err := empty.Save(ctx, "k", "v"); err == nil {
		t.Fatalf("empty dir: expected error")
	}
}
