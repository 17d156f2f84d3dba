package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Dir           string `json:"dir"`
			PublicBaseURL string `json:"public_base_url"`
		} `json:"files,omitempty"`

		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress         string   `json:"http_address"`
		GRPCAddress         string   `json:"grpc_address"`
		RequestTimeout      Duration `json:"request_timeout"`
		HealthProbeInterval Duration `json:"health_probe_interval"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Workers struct {
		InventoryID      int64    `json:"inventory_id"`
		DebounceInterval Duration `json:"debounce_interval"`
		FlushInterval    Duration `json:"flush_interval"`
		FlushTimeout     Duration `json:"flush_timeout"`
	} `json:"workers,omitempty"`

	Collab struct {
		SendBuffer   int      `json:"send_buffer"`
		WriteTimeout Duration `json:"write_timeout"`
		PongTimeout  Duration `json:"pong_timeout"`
		RedisAddress string   `json:"redis_address"`
		RedisChannel string   `json:"redis_channel"`
	} `json:"collab,omitempty"`

	Identity struct {
		DirectoryURL   string   `json:"directory_url"`
		RequestTimeout Duration `json:"request_timeout"`
		CacheTTL       Duration `json:"cache_ttl"`
	} `json:"identity,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: j.App.TokenSignKey,
			TokenIssuer:  j.App.TokenIssuer,
			Version:      j.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: j.Storage.DB.DSN},
			Files: Files{Dir: j.Storage.Files.Dir, PublicBaseURL: j.Storage.Files.PublicBaseURL},
			Local: Local{DSN: j.Storage.Local.DSN},
		},
		Server: Server{
			HTTPAddress:         j.Server.HTTPAddress,
			GRPCAddress:         j.Server.GRPCAddress,
			RequestTimeout:      time.Duration(j.Server.RequestTimeout),
			HealthProbeInterval: time.Duration(j.Server.HealthProbeInterval),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			Token:          j.Adapter.Token,
		},
		Workers: Workers{
			InventoryID:      j.Workers.InventoryID,
			DebounceInterval: time.Duration(j.Workers.DebounceInterval),
			FlushInterval:    time.Duration(j.Workers.FlushInterval),
			FlushTimeout:     time.Duration(j.Workers.FlushTimeout),
		},
		Collab: Collab{
			SendBuffer:   j.Collab.SendBuffer,
			WriteTimeout: time.Duration(j.Collab.WriteTimeout),
			PongTimeout:  time.Duration(j.Collab.PongTimeout),
			RedisAddress: j.Collab.RedisAddress,
			RedisChannel: j.Collab.RedisChannel,
		},
		Identity: Identity{
			DirectoryURL:   j.Identity.DirectoryURL,
			RequestTimeout: time.Duration(j.Identity.RequestTimeout),
			CacheTTL:       time.Duration(j.Identity.CacheTTL),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
