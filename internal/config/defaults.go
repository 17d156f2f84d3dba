package config

import "time"

// Defaults used when no source sets a value.
const (
	DefaultHTTPAddress      = "localhost:8080"
	DefaultGRPCAddress      = "localhost:9090"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultHealthProbe      = 10 * time.Second
	DefaultIdentityCacheTTL = 5 * time.Minute
	DefaultDebounceInterval = time.Second
	DefaultFlushInterval    = 8 * time.Second
	DefaultFlushTimeout     = 10 * time.Second
	DefaultSendBuffer       = 64
	DefaultWriteTimeout     = 10 * time.Second
	DefaultPongTimeout      = 60 * time.Second
	DefaultRedisChannel     = "inventory-hub:rooms"
	DefaultLocalDSN         = "drafts.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Local: Local{DSN: DefaultLocalDSN},
		},
		Server: Server{
			HTTPAddress:         DefaultHTTPAddress,
			GRPCAddress:         DefaultGRPCAddress,
			RequestTimeout:      DefaultRequestTimeout,
			HealthProbeInterval: DefaultHealthProbe,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			DebounceInterval: DefaultDebounceInterval,
			FlushInterval:    DefaultFlushInterval,
			FlushTimeout:     DefaultFlushTimeout,
		},
		Collab: Collab{
			SendBuffer:   DefaultSendBuffer,
			WriteTimeout: DefaultWriteTimeout,
			PongTimeout:  DefaultPongTimeout,
			RedisChannel: DefaultRedisChannel,
		},
		Identity: Identity{
			RequestTimeout: DefaultRequestTimeout,
			CacheTTL:       DefaultIdentityCacheTTL,
		},
	}
}
