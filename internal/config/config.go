// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and client binaries. It is populated by merging defaults,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity token verification settings and the build version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database, blob directory and the
	// client-side draft database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts for HTTP and gRPC.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server (base URL, token).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds timings of the client reconciliation loop.
	Workers Workers `envPrefix:"WORKERS_"`

	// Collab holds collaboration channel settings (socket limits, relay).
	Collab Collab `envPrefix:"COLLAB_"`

	// Identity holds the identity directory endpoint used to confirm
	// grant targets.
	Identity Identity `envPrefix:"IDENTITY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// TokenSignKey verifies principal tokens issued by the identity
	// provider (HS256).
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim. Empty disables the check.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of all persistence backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
	// Local is the client-side draft database.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for PostgreSQL.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds blob storage settings.
type Files struct {
	// Dir is where normalized inventory images are written.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`

	// PublicBaseURL prefixes blob keys in returned URLs,
	// e.g. "http://localhost:8080/files".
	// Env: STORAGE_FILES_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

// Local holds the client draft database path.
type Local struct {
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HealthProbeInterval is how often the gRPC health status is refreshed
	// from the database.
	// Env: SERVER_HEALTH_PROBE_INTERVAL
	HealthProbeInterval time.Duration `env:"HEALTH_PROBE_INTERVAL"`
}

// Adapter holds the client's connection to the server.
type Adapter struct {
	// HTTPAddress is the server base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the principal token sent as a Bearer credential.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds timings of the client reconciliation loop.
type Workers struct {
	// InventoryID selects the inventory the client edits.
	// Env: WORKERS_INVENTORY_ID
	InventoryID int64 `env:"INVENTORY_ID"`

	// DebounceInterval coalesces bursts of edits.
	// Env: WORKERS_DEBOUNCE_INTERVAL
	DebounceInterval time.Duration `env:"DEBOUNCE_INTERVAL"`

	// FlushInterval is the period of the flush timer.
	// Env: WORKERS_FLUSH_INTERVAL
	FlushInterval time.Duration `env:"FLUSH_INTERVAL"`

	// FlushTimeout bounds a single flush attempt.
	// Env: WORKERS_FLUSH_TIMEOUT
	FlushTimeout time.Duration `env:"FLUSH_TIMEOUT"`
}

// Collab holds collaboration channel settings.
type Collab struct {
	// SendBuffer is the per-connection outbound queue length. Events for a
	// connection whose queue is full are dropped.
	// Env: COLLAB_SEND_BUFFER
	SendBuffer int `env:"SEND_BUFFER"`

	// WriteTimeout bounds a single socket write.
	// Env: COLLAB_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// PongTimeout is how long a silent connection is kept before it is
	// considered dead.
	// Env: COLLAB_PONG_TIMEOUT
	PongTimeout time.Duration `env:"PONG_TIMEOUT"`

	// RedisAddress enables the cross-instance relay when non-empty.
	// Env: COLLAB_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// RedisChannel is the Pub/Sub channel of the relay.
	// Env: COLLAB_REDIS_CHANNEL
	RedisChannel string `env:"REDIS_CHANNEL"`
}

// Identity holds the identity directory client settings.
type Identity struct {
	// DirectoryURL is the base URL of the identity directory. Empty
	// disables grant target lookups.
	// Env: IDENTITY_DIRECTORY_URL
	DirectoryURL string `env:"DIRECTORY_URL"`

	// Env: IDENTITY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CacheTTL is how long a successful lookup is reused. Zero disables
	// the cache.
	// Env: IDENTITY_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// GetStructuredConfig loads and merges the configuration in the following
// priority order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// The result is validated as a server configuration.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
