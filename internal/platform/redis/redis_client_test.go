package redis

import (
	"context"
	"net"
	"testing"
)

func TestConfig_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{name: "host and port", cfg: Config{Host: "localhost", Port: "6379"}, expected: "localhost:6379"},
		{name: "ipv6 host", cfg: Config{Host: "::1", Port: "6379"}, expected: "[::1]:6379"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.cfg.Addr(); got != tt.expected {
				t.Errorf("Addr() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

// TestNewRedisClient_ConnectionRefused は接続できない場合にエラーを返すことを検証します。
func TestNewRedisClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	// 空きポートを確保してすぐ閉じる
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	_, port, _ := net.SplitHostPort(ln.Addr().String())
	_ = ln.Close()

	rdb, err := NewRedisClient(context.Background(), Config{Host: "127.0.0.1", Port: port})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if rdb != nil {
		t.Error("expected nil client on failure")
	}
}
