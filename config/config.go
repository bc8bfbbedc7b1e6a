// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package config holds the configuration of an Aura node.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ChainSafe/gossamer-aura/internal/log"
	"github.com/ChainSafe/gossamer-aura/internal/metrics"
	"github.com/ChainSafe/gossamer-aura/internal/pprof"
	"github.com/ChainSafe/gossamer-aura/lib/aura"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
	"github.com/ChainSafe/gossamer-aura/lib/keystore"
	"github.com/ChainSafe/gossamer-aura/lib/slots"
	"github.com/ChainSafe/gossamer-aura/lib/utils"

	"github.com/naoina/toml"
)

const (
	// DefaultName is the default node name.
	DefaultName = "aura"
	// DefaultConfigFileName is the name of the configuration file in the base path.
	DefaultConfigFileName = "config.toml"
	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
	// DefaultSlotDuration is the slot duration of the development chain.
	DefaultSlotDuration = 2 * time.Second
	// DefaultClockLeadTolerance is how far ahead of the local clock a block slot may start.
	DefaultClockLeadTolerance = 2 * time.Second
	// DefaultClockLagTolerance is how late into its slot authoring may start, zero allows the whole slot.
	DefaultClockLagTolerance = 0
	// DefaultFinalityDepth is the number of blocks below the best block considered final.
	DefaultFinalityDepth = 10
	// DefaultDevAuthorities is the default size of the development authority set.
	DefaultDevAuthorities = 3
)

var (
	errEmptyBasePath        = errors.New("base path cannot be empty")
	errInvalidSlotDuration  = errors.New("slot duration must not be negative")
	errInvalidTolerance     = errors.New("clock tolerance cannot be negative")
	errInvalidSlotPortion   = errors.New("block proposal slot portion must be in (0, 1]")
	errInvalidMaxPortion    = errors.New("max block proposal slot portion must be zero or in [slot portion, 1]")
	errInvalidBackoff       = errors.New("backoff authoring bias must be positive")
	errInvalidDevAuthorites = errors.New("number of development authorities out of range")
	errEmptyMetricsAddress  = errors.New("metrics address cannot be empty when metrics are enabled")
	errEmptyPprofAddress    = errors.New("pprof listening address cannot be empty when pprof is enabled")
)

// Config defines the configuration of an Aura node.
type Config struct {
	Base    BaseConfig    `mapstructure:"base" toml:"base"`
	Log     LogConfig     `mapstructure:"log" toml:"log"`
	Aura    AuraConfig    `mapstructure:"aura" toml:"aura"`
	Metrics MetricsConfig `mapstructure:"metrics" toml:"metrics"`
	Pprof   PprofConfig   `mapstructure:"pprof" toml:"pprof"`
	Dev     DevConfig     `mapstructure:"dev" toml:"dev"`
}

// BaseConfig is the node wide configuration.
type BaseConfig struct {
	Name     string `mapstructure:"name" toml:"name"`
	BasePath string `mapstructure:"base-path" toml:"base-path"`
	LogLevel string `mapstructure:"log-level" toml:"log-level"`
	// KeyType is the signature scheme of the authority keys, sr25519 or ed25519.
	KeyType string `mapstructure:"key-type" toml:"key-type"`
	// Key is the development key name or the SS58 address of a key in the keystore.
	Key      string `mapstructure:"key" toml:"key"`
	InMemory bool   `mapstructure:"in-memory" toml:"in-memory"`
}

// LogConfig holds the per package log levels. An empty level uses the base level.
type LogConfig struct {
	State   string `mapstructure:"state" toml:"state"`
	Core    string `mapstructure:"core" toml:"core"`
	Network string `mapstructure:"network" toml:"network"`
	Aura    string `mapstructure:"aura" toml:"aura"`
}

// AuraConfig configures slot timing, authoring and verification.
type AuraConfig struct {
	// SlotDuration overrides the slot duration of the development chain genesis,
	// zero keeps the chain's own DefaultSlotDuration.
	SlotDuration time.Duration `mapstructure:"slot-duration" toml:"slot-duration"`
	// GenesisTime is the start of slot 0, in milliseconds since the Unix epoch.
	GenesisTime                 uint64        `mapstructure:"genesis-time" toml:"genesis-time"`
	ClockLeadTolerance          time.Duration `mapstructure:"clock-lead-tolerance" toml:"clock-lead-tolerance"`
	ClockLagTolerance           time.Duration `mapstructure:"clock-lag-tolerance" toml:"clock-lag-tolerance"`
	BlockProposalSlotPortion    float64       `mapstructure:"block-proposal-slot-portion" toml:"block-proposal-slot-portion"`
	MaxBlockProposalSlotPortion float64       `mapstructure:"max-block-proposal-slot-portion" toml:"max-block-proposal-slot-portion"`
	// SlotLenience is none, linear or exponential.
	SlotLenience       string        `mapstructure:"slot-lenience" toml:"slot-lenience"`
	EquivocationWindow uint64        `mapstructure:"equivocation-window" toml:"equivocation-window"`
	ForceAuthoring     bool          `mapstructure:"force-authoring" toml:"force-authoring"`
	Backoff            BackoffConfig `mapstructure:"backoff" toml:"backoff"`
	AuthorityCacheSize int           `mapstructure:"authority-cache-size" toml:"authority-cache-size"`
	MaxDeferredBlocks  int           `mapstructure:"max-deferred-blocks" toml:"max-deferred-blocks"`
	FinalityDepth      uint          `mapstructure:"finality-depth" toml:"finality-depth"`
}

// BackoffConfig configures backing off authoring when finality lags.
type BackoffConfig struct {
	Enabled          bool `mapstructure:"enabled" toml:"enabled"`
	MaxInterval      uint `mapstructure:"max-interval" toml:"max-interval"`
	UnfinalizedSlack uint `mapstructure:"unfinalized-slack" toml:"unfinalized-slack"`
	AuthoringBias    uint `mapstructure:"authoring-bias" toml:"authoring-bias"`
}

// MetricsConfig configures the Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Address string `mapstructure:"address" toml:"address"`
}

// PprofConfig configures the pprof http server.
type PprofConfig struct {
	Enabled          bool   `mapstructure:"enabled" toml:"enabled"`
	ListeningAddress string `mapstructure:"listening-address" toml:"listening-address"`
	BlockProfileRate int    `mapstructure:"block-profile-rate" toml:"block-profile-rate"`
	MutexProfileRate int    `mapstructure:"mutex-profile-rate" toml:"mutex-profile-rate"`
}

// DevConfig configures the development chain.
type DevConfig struct {
	// Authorities is the number of development keys in the genesis authority set.
	// One in-process node is run per authority, all connected by a shared hub.
	// With a single authority the node uses the key named by BaseConfig.Key.
	Authorities int `mapstructure:"authorities" toml:"authorities"`
}

// DefaultConfig returns the default configuration of a development node.
func DefaultConfig() *Config {
	backoff := slots.DefaultBackoffAuthoringOnFinalizedHeadLagging()
	return &Config{
		Base: BaseConfig{
			Name:     DefaultName,
			BasePath: utils.BasePath(DefaultName),
			LogLevel: DefaultLogLevel,
			KeyType:  crypto.Sr25519Type,
			Key:      keystore.DevKeyNames[0],
		},
		Aura: AuraConfig{
			SlotDuration:             DefaultSlotDuration,
			ClockLeadTolerance:       DefaultClockLeadTolerance,
			ClockLagTolerance:        DefaultClockLagTolerance,
			BlockProposalSlotPortion: slots.DefaultBlockProposalSlotPortion,
			SlotLenience:             slots.LenienceLinear.String(),
			EquivocationWindow:       aura.DefaultEquivocationWindow,
			Backoff: BackoffConfig{
				Enabled:          true,
				MaxInterval:      backoff.MaxInterval,
				UnfinalizedSlack: backoff.UnfinalizedSlack,
				AuthoringBias:    backoff.AuthoringBias,
			},
			AuthorityCacheSize: aura.DefaultAuthorityCacheSize,
			MaxDeferredBlocks:  aura.DefaultMaxDeferredBlocks,
			FinalityDepth:      DefaultFinalityDepth,
		},
		Metrics: MetricsConfig{
			Address: metrics.DefaultAddress,
		},
		Pprof: PprofConfig{
			ListeningAddress: pprof.DefaultAddress,
		},
		Dev: DevConfig{
			Authorities: DefaultDevAuthorities,
		},
	}
}

// ValidateBasic checks the configuration values are usable.
func (c *Config) ValidateBasic() error {
	if c.Base.BasePath == "" {
		return errEmptyBasePath
	}
	if _, err := crypto.ParseKeyType(c.Base.KeyType); err != nil {
		return fmt.Errorf("invalid key type: %w", err)
	}
	if _, err := log.ParseLevel(c.Base.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	for _, level := range []string{c.Log.State, c.Log.Core, c.Log.Network, c.Log.Aura} {
		if level == "" {
			continue
		}
		if _, err := log.ParseLevel(level); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}

	if err := c.Aura.validate(); err != nil {
		return err
	}

	if c.Metrics.Enabled && c.Metrics.Address == "" {
		return errEmptyMetricsAddress
	}
	if c.Pprof.Enabled && c.Pprof.ListeningAddress == "" {
		return errEmptyPprofAddress
	}

	if c.Dev.Authorities < 1 || c.Dev.Authorities > len(keystore.DevKeyNames) {
		return fmt.Errorf("%w: %d not in [1, %d]",
			errInvalidDevAuthorites, c.Dev.Authorities, len(keystore.DevKeyNames))
	}
	return nil
}

func (c *AuraConfig) validate() error {
	if c.SlotDuration < 0 {
		return fmt.Errorf("%w: %s", errInvalidSlotDuration, c.SlotDuration)
	}
	if c.ClockLeadTolerance < 0 || c.ClockLagTolerance < 0 {
		return fmt.Errorf("%w: lead %s, lag %s", errInvalidTolerance, c.ClockLeadTolerance, c.ClockLagTolerance)
	}
	if c.BlockProposalSlotPortion <= 0 || c.BlockProposalSlotPortion > 1 {
		return fmt.Errorf("%w: %g", errInvalidSlotPortion, c.BlockProposalSlotPortion)
	}
	if c.MaxBlockProposalSlotPortion != 0 &&
		(c.MaxBlockProposalSlotPortion < c.BlockProposalSlotPortion || c.MaxBlockProposalSlotPortion > 1) {
		return fmt.Errorf("%w: %g", errInvalidMaxPortion, c.MaxBlockProposalSlotPortion)
	}
	if _, err := slots.ParseLenience(c.SlotLenience); err != nil {
		return err
	}
	if c.Backoff.Enabled && c.Backoff.AuthoringBias == 0 {
		return errInvalidBackoff
	}
	return nil
}

// ProposingParams returns the block proposal timing parameters.
func (c *AuraConfig) ProposingParams() (params slots.ProposingParams, err error) {
	lenience, err := slots.ParseLenience(c.SlotLenience)
	if err != nil {
		return params, err
	}
	return slots.ProposingParams{
		SlotPortion:    c.BlockProposalSlotPortion,
		MaxSlotPortion: c.MaxBlockProposalSlotPortion,
		Lenience:       lenience,
	}, nil
}

// BackoffStrategy returns the authoring backoff strategy, or nil when disabled.
func (c *AuraConfig) BackoffStrategy() slots.BackoffAuthoringBlocksStrategy {
	if !c.Backoff.Enabled {
		return nil
	}
	return slots.BackoffAuthoringOnFinalizedHeadLagging{
		MaxInterval:      c.Backoff.MaxInterval,
		UnfinalizedSlack: c.Backoff.UnfinalizedSlack,
		AuthoringBias:    c.Backoff.AuthoringBias,
	}
}

// GenesisTimestamp returns the start of slot 0.
func (c *AuraConfig) GenesisTimestamp() time.Time {
	return time.UnixMilli(int64(c.GenesisTime))
}

// LogLevel returns the level for a package, falling back to the base level.
func (c *Config) LogLevel(pkgLevel string) log.Level {
	level, err := log.ParseLevel(pkgLevel)
	if err == nil && pkgLevel != "" {
		return level
	}
	level, err = log.ParseLevel(c.Base.LogLevel)
	if err != nil {
		return log.Info
	}
	return level
}

// ExportTOML writes the configuration as TOML to the file.
func ExportTOML(cfg *Config, fp string) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(fp), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(fp, raw, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// LoadTOML reads a configuration from a TOML file on top of the defaults.
func LoadTOML(fp string) (*Config, error) {
	raw, err := os.ReadFile(filepath.Clean(fp))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}
