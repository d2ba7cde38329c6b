package cache

import (
	"cloudvault/internal/config"
	"context"
	"testing"
)

func TestNewRedisRequiresAddress(t *testing.T) {
	if _, err := NewRedis(config.RedisConfig{}); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestNewRedisUnreachable(t *testing.T) {
	if _, err := NewRedis(config.RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Fatal("expected ping failure for closed port")
	}
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *RedisCache
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "summary"); ok || err != nil {
		t.Errorf("expected miss without error, got ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, "summary", []byte("x")); err != nil {
		t.Errorf("unexpected set error: %v", err)
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Errorf("unexpected invalidate error: %v", err)
	}
}

func TestKey(t *testing.T) {
	if got := Key("summary:list:all"); got != "cloudvault:dashboard:summary:list:all" {
		t.Errorf("unexpected key %q", got)
	}
}
