// Package config loads process-wide configuration from environment
// variables, the way the rest of this codebase's ambient services are
// configured: no flags library, explicit getEnv* helpers, secure-by-
// default where a default exists at all.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the process-wide settings: database connectivity, the
// gRPC/metrics listeners, logging and the signer. Per-chain settings
// (ChainConfig) are supplied at `chain add` time and persisted; the
// environment only provides their defaults, via ChainConfigFromEnv.
type Config struct {
	DatabaseURL         string
	DatabaseMaxConns    int
	DatabaseMinConns    int
	DatabaseMaxIdleTime int // seconds
	DatabaseMaxLifetime int // seconds

	GRPCListenAddr    string
	MetricsListenAddr string

	LogLevel  string
	LogFormat string // "text" or "json"

	SignerMnemonic      string
	SignerHDPath        string
	SignerAccountPrefix string
}

// Load reads configuration from environment variables, applying safe
// defaults for everything except DatabaseURL and SignerMnemonic.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:         getEnv("SOLO_DATABASE_URL", ""),
		DatabaseMaxConns:    getEnvInt("SOLO_DATABASE_MAX_CONNS", 25),
		DatabaseMinConns:    getEnvInt("SOLO_DATABASE_MIN_CONNS", 5),
		DatabaseMaxIdleTime: getEnvInt("SOLO_DATABASE_MAX_IDLE_TIME", 300),
		DatabaseMaxLifetime: getEnvInt("SOLO_DATABASE_MAX_LIFETIME", 3600),

		GRPCListenAddr:    getEnv("SOLO_GRPC_ADDR", "0.0.0.0:9090"),
		MetricsListenAddr: getEnv("SOLO_METRICS_ADDR", "0.0.0.0:9091"),

		LogLevel:  getEnv("SOLO_LOG_LEVEL", "info"),
		LogFormat: getEnv("SOLO_LOG_FORMAT", "text"),

		SignerMnemonic:      getEnv("SOLO_MNEMONIC", ""),
		SignerHDPath:        getEnv("SOLO_HD_PATH", "m/44'/118'/0'/0/0"),
		SignerAccountPrefix: getEnv("SOLO_ACCOUNT_PREFIX", "cosmos"),
	}
	return cfg, nil
}

// Validate checks that the settings required to run the service are
// present.
func (c *Config) Validate() error {
	var errs []string
	if c.DatabaseURL == "" {
		errs = append(errs, "SOLO_DATABASE_URL is required but not set")
	}
	if c.SignerMnemonic == "" {
		errs = append(errs, "SOLO_MNEMONIC is required but not set")
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ChainConfig is the immutable registration-time configuration for one
// chain, captured by `chain add` and never mutated afterward.
type ChainConfig struct {
	GRPCAddr        string
	RPCAddr         string
	FeeAmount       string
	FeeDenom        string
	FeeGasLimit     uint64
	TrustLevelNum   uint64
	TrustLevelDenom uint64
	TrustingPeriod  time.Duration
	MaxClockDrift   time.Duration
	RPCTimeout      time.Duration
	Diversifier     string
	PortID          string
	TrustedHeight   uint64
	TrustedHash     [32]byte
	Memo            string
}

// ChainConfigFromEnv builds a ChainConfig from SOLO_* environment
// variables, for the CLI's flagless path. Flags passed on the command
// line (see cmd/solo-machine) take precedence over these when both are
// present; ChainConfigFromEnv supplies the defaults.
func ChainConfigFromEnv() (ChainConfig, error) {
	trustedHashHex := getEnv("SOLO_TRUSTED_HASH", "")
	var hash [32]byte
	if trustedHashHex != "" {
		decoded, err := decodeHex32(trustedHashHex)
		if err != nil {
			return ChainConfig{}, fmt.Errorf("parsing SOLO_TRUSTED_HASH: %w", err)
		}
		hash = decoded
	}

	return ChainConfig{
		GRPCAddr:        getEnv("SOLO_GRPC_ADDR_REMOTE", ""),
		RPCAddr:         getEnv("SOLO_RPC_ADDR", ""),
		FeeAmount:       getEnv("SOLO_FEE_AMOUNT", "5000"),
		FeeDenom:        getEnv("SOLO_FEE_DENOM", "stake"),
		FeeGasLimit:     uint64(getEnvInt("SOLO_FEE_GAS_LIMIT", 200000)),
		TrustLevelNum:   uint64(getEnvInt("SOLO_TRUST_LEVEL_NUM", 1)),
		TrustLevelDenom: uint64(getEnvInt("SOLO_TRUST_LEVEL_DENOM", 3)),
		TrustingPeriod:  getEnvDuration("SOLO_TRUSTING_PERIOD", 14*24*time.Hour),
		MaxClockDrift:   getEnvDuration("SOLO_MAX_CLOCK_DRIFT", 10*time.Second),
		RPCTimeout:      getEnvDuration("SOLO_RPC_TIMEOUT", 30*time.Second),
		Diversifier:     getEnv("SOLO_DIVERSIFIER", "solo-machine"),
		PortID:          getEnv("SOLO_PORT_ID", "transfer"),
		TrustedHeight:   uint64(getEnvInt("SOLO_TRUSTED_HEIGHT", 0)),
		TrustedHash:     hash,
		Memo:            getEnv("SOLO_MEMO", ""),
	}, nil
}

func decodeHex32(s string) ([32]byte, error) {
	var out [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
