package teamhub

import (
	"testing"
	"time"
)

func TestNew_NoAddress(t *testing.T) {
	_, err := New()
	if err == nil {
		t.Fatal("expected error without a database address")
	}
}

func TestOptions_Apply(t *testing.T) {
	cfg := &clientConfig{}
	opts := []Option{
		WithRedis("localhost:6379", "secret"),
		WithSearchTimeout(2 * time.Second),
		WithEmbedding("sk-test", "", "text-embedding-3-small", 1536),
	}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) != 1 || cfg.addrs[0] != "localhost:6379" {
		t.Errorf("addrs = %v", cfg.addrs)
	}
	if cfg.password != "secret" {
		t.Errorf("password = %q", cfg.password)
	}
	if cfg.searchTimeout != 2*time.Second {
		t.Errorf("searchTimeout = %v", cfg.searchTimeout)
	}
	if cfg.embeddingAPIKey != "sk-test" || cfg.embeddingModel != "text-embedding-3-small" {
		t.Errorf("embedding config = %+v", cfg)
	}
	if cfg.embeddingDims != 1536 {
		t.Errorf("dimensions = %d", cfg.embeddingDims)
	}
}

func TestOptions_Cluster(t *testing.T) {
	cfg := &clientConfig{}
	WithRedisCluster([]string{"n1:6379", "n2:6379"}, "app", "pw")(cfg)

	if len(cfg.addrs) != 2 {
		t.Fatalf("addrs = %v", cfg.addrs)
	}
	if cfg.username != "app" || cfg.password != "pw" {
		t.Errorf("credentials = %q/%q", cfg.username, cfg.password)
	}
}
