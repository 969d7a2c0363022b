package teamhub

import "time"

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	addrs    []string
	username string
	password string

	searchTimeout time.Duration

	embeddingAPIKey  string
	embeddingBaseURL string
	embeddingModel   string
	embeddingDims    int
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithRedisCluster configures the client with multiple seed addresses.
func WithRedisCluster(addrs []string, username, password string) Option {
	return func(c *clientConfig) {
		c.addrs = addrs
		c.username = username
		c.password = password
	}
}

// WithSearchTimeout bounds the provider fan-out per search request.
func WithSearchTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.searchTimeout = d
	}
}

// WithEmbedding enables knowledge-base search via an OpenAI-compatible
// embeddings API. Without it, SearchKnowledge returns an error.
func WithEmbedding(apiKey, baseURL, model string, dimensions int) Option {
	return func(c *clientConfig) {
		c.embeddingAPIKey = apiKey
		c.embeddingBaseURL = baseURL
		c.embeddingModel = model
		c.embeddingDims = dimensions
	}
}
