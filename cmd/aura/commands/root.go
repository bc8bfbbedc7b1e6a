// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package commands implements the aura command-line interface.
package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ChainSafe/gossamer-aura/config"
	"github.com/ChainSafe/gossamer-aura/dot"
	"github.com/ChainSafe/gossamer-aura/internal/log"
	"github.com/ChainSafe/gossamer-aura/lib/keystore"
	"github.com/ChainSafe/gossamer-aura/lib/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// EnvPrefix is the prefix of the environment variables overriding configuration keys,
// for example AURA_AURA_SLOT_DURATION.
const EnvPrefix = "AURA"

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var errPasswordRequired = errors.New("password required to unlock keystore")

// NewRootCommand creates the root command running an Aura chain.
func NewRootCommand() (*cobra.Command, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   config.DefaultName,
		Short: "Aura slot based proof of authority node",
		Long: `aura runs an Aura development chain, one node per authority.
Usage:
	aura --dev-authorities 3 --slot-duration 2s
	aura --dev-authorities 1 --key bob --force-authoring
	aura --dev-authorities 1 --key 5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY --password secret
	aura --config ./config.toml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseConfig(cmd, v)
			if err != nil {
				return err
			}
			return execRoot(cmd, cfg)
		},
	}

	if err := addRootFlags(cmd, v); err != nil {
		return nil, err
	}

	cmd.AddCommand(newKeyCommand(v), newConfigCommand(v))
	return cmd, nil
}

// addRootFlags adds the root flags to the command
func addRootFlags(cmd *cobra.Command, v *viper.Viper) error {
	defaults := config.DefaultConfig()

	cmd.PersistentFlags().String("config", "",
		"TOML configuration file, overridden by flags and environment variables")
	cmd.PersistentFlags().String("password", "",
		"Password used to encrypt and decrypt the keystore")

	// Base Config
	if err := addStringFlagBindViper(v, cmd,
		"name", defaults.Base.Name,
		"Name of the node",
		"base.name"); err != nil {
		return fmt.Errorf("failed to add --name flag: %s", err)
	}
	if err := addStringFlagBindViper(v, cmd,
		"base-path", defaults.Base.BasePath,
		"Data directory of the node",
		"base.base-path"); err != nil {
		return fmt.Errorf("failed to add --base-path flag: %s", err)
	}
	if err := addStringFlagBindViper(v, cmd,
		"log", defaults.Base.LogLevel,
		"Global log level. Supports levels critical (silent), error, warn, info, debug and trace",
		"base.log-level"); err != nil {
		return fmt.Errorf("failed to add --log flag: %s", err)
	}
	if err := addStringFlagBindViper(v, cmd,
		"key-type", defaults.Base.KeyType,
		"Signature scheme of the authority keys, sr25519 or ed25519",
		"base.key-type"); err != nil {
		return fmt.Errorf("failed to add --key-type flag: %s", err)
	}
	if err := addStringFlagBindViper(v, cmd,
		"key", defaults.Base.Key,
		"Development key name or SS58 address of a keystore key, used with a single authority",
		"base.key"); err != nil {
		return fmt.Errorf("failed to add --key flag: %s", err)
	}
	if err := addBoolFlagBindViper(v, cmd,
		"in-memory", defaults.Base.InMemory,
		"Keep the chain state in memory only",
		"base.in-memory"); err != nil {
		return fmt.Errorf("failed to add --in-memory flag: %s", err)
	}

	// Log Config
	for _, pkg := range []string{"state", "core", "network", "aura"} {
		if err := addStringFlagBindViper(v, cmd,
			"l"+pkg, "",
			fmt.Sprintf("%s package log level", pkg),
			"log."+pkg); err != nil {
			return fmt.Errorf("failed to add --l%s flag: %s", pkg, err)
		}
	}

	if err := addAuraFlags(cmd, v, defaults.Aura); err != nil {
		return fmt.Errorf("failed to add aura flags: %s", err)
	}

	// Metrics Config
	if err := addBoolFlagBindViper(v, cmd,
		"publish-metrics", defaults.Metrics.Enabled,
		"Publish metrics to prometheus",
		"metrics.enabled"); err != nil {
		return fmt.Errorf("failed to add --publish-metrics flag: %s", err)
	}
	if err := addStringFlagBindViper(v, cmd,
		"metrics-address", defaults.Metrics.Address,
		"Listen address of the metric server",
		"metrics.address"); err != nil {
		return fmt.Errorf("failed to add --metrics-address flag: %s", err)
	}

	// Pprof Config
	if err := addBoolFlagBindViper(v, cmd,
		"pprof.enabled", defaults.Pprof.Enabled,
		"Serve the Go runtime profiles over HTTP",
		"pprof.enabled"); err != nil {
		return fmt.Errorf("failed to add --pprof.enabled flag: %s", err)
	}
	if err := addStringFlagBindViper(v, cmd,
		"pprof.listening-address", defaults.Pprof.ListeningAddress,
		"Address to listen on for pprof",
		"pprof.listening-address"); err != nil {
		return fmt.Errorf("failed to add --pprof.listening-address flag: %s", err)
	}
	if err := addIntFlagBindViper(v, cmd,
		"pprof.block-profile-rate", defaults.Pprof.BlockProfileRate,
		"The frequency at which the Go runtime samples the state of goroutines to generate block profile information.",
		"pprof.block-profile-rate"); err != nil {
		return fmt.Errorf("failed to add --pprof.block-profile-rate flag: %s", err)
	}
	if err := addIntFlagBindViper(v, cmd,
		"pprof.mutex-profile-rate", defaults.Pprof.MutexProfileRate,
		"The frequency at which the Go runtime samples the state of mutexes to generate mutex profile information.",
		"pprof.mutex-profile-rate"); err != nil {
		return fmt.Errorf("failed to add --pprof.mutex-profile-rate flag: %s", err)
	}

	// Dev Config
	if err := addIntFlagBindViper(v, cmd,
		"dev-authorities", defaults.Dev.Authorities,
		"Number of development authorities, one node is run per authority",
		"dev.authorities"); err != nil {
		return fmt.Errorf("failed to add --dev-authorities flag: %s", err)
	}

	return nil
}

// addAuraFlags adds the slot timing and authoring flags and binds them to viper
func addAuraFlags(cmd *cobra.Command, v *viper.Viper, defaults config.AuraConfig) error {
	if err := addDurationFlagBindViper(v, cmd,
		"slot-duration", defaults.SlotDuration,
		"Slot duration of the chain genesis, 0 keeps the chain default",
		"aura.slot-duration"); err != nil {
		return fmt.Errorf("failed to add --slot-duration flag: %s", err)
	}
	if err := addUint64FlagBindViper(v, cmd,
		"genesis-time", defaults.GenesisTime,
		"Start of slot 0 in milliseconds since the Unix epoch",
		"aura.genesis-time"); err != nil {
		return fmt.Errorf("failed to add --genesis-time flag: %s", err)
	}
	if err := addDurationFlagBindViper(v, cmd,
		"clock-lead-tolerance", defaults.ClockLeadTolerance,
		"How far in the future a block slot may start",
		"aura.clock-lead-tolerance"); err != nil {
		return fmt.Errorf("failed to add --clock-lead-tolerance flag: %s", err)
	}
	if err := addDurationFlagBindViper(v, cmd,
		"clock-lag-tolerance", defaults.ClockLagTolerance,
		"How late into its slot the best block may be before the node is lagging",
		"aura.clock-lag-tolerance"); err != nil {
		return fmt.Errorf("failed to add --clock-lag-tolerance flag: %s", err)
	}
	if err := addFloat64FlagBindViper(v, cmd,
		"block-proposal-slot-portion", defaults.BlockProposalSlotPortion,
		"Portion of the slot spent building a block",
		"aura.block-proposal-slot-portion"); err != nil {
		return fmt.Errorf("failed to add --block-proposal-slot-portion flag: %s", err)
	}
	if err := addFloat64FlagBindViper(v, cmd,
		"max-block-proposal-slot-portion", defaults.MaxBlockProposalSlotPortion,
		"Maximum portion of the slot spent building a block after skipped slots, 0 for no limit",
		"aura.max-block-proposal-slot-portion"); err != nil {
		return fmt.Errorf("failed to add --max-block-proposal-slot-portion flag: %s", err)
	}
	if err := addStringFlagBindViper(v, cmd,
		"slot-lenience", defaults.SlotLenience,
		"Proposal time lenience after skipped slots: none, linear or exponential",
		"aura.slot-lenience"); err != nil {
		return fmt.Errorf("failed to add --slot-lenience flag: %s", err)
	}
	if err := addUint64FlagBindViper(v, cmd,
		"equivocation-window", defaults.EquivocationWindow,
		"Number of slots kept for equivocation detection",
		"aura.equivocation-window"); err != nil {
		return fmt.Errorf("failed to add --equivocation-window flag: %s", err)
	}
	if err := addBoolFlagBindViper(v, cmd,
		"force-authoring", defaults.ForceAuthoring,
		"Author blocks while offline or syncing",
		"aura.force-authoring"); err != nil {
		return fmt.Errorf("failed to add --force-authoring flag: %s", err)
	}
	if err := addBoolFlagBindViper(v, cmd,
		"backoff", defaults.Backoff.Enabled,
		"Back off authoring when finality lags",
		"aura.backoff.enabled"); err != nil {
		return fmt.Errorf("failed to add --backoff flag: %s", err)
	}
	if err := addIntFlagBindViper(v, cmd,
		"max-deferred-blocks", defaults.MaxDeferredBlocks,
		"Capacity of the queue of blocks deferred for a later import",
		"aura.max-deferred-blocks"); err != nil {
		return fmt.Errorf("failed to add --max-deferred-blocks flag: %s", err)
	}
	if err := addUintFlagBindViper(v, cmd,
		"finality-depth", defaults.FinalityDepth,
		"Number of blocks below the best block considered final",
		"aura.finality-depth"); err != nil {
		return fmt.Errorf("failed to add --finality-depth flag: %s", err)
	}
	return nil
}

// parseConfig returns the configuration from the defaults, the configuration file,
// the environment and the command line flags, in increasing order of precedence.
func parseConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get --config: %s", err)
	}

	if cfgPath != "" {
		v.SetConfigFile(utils.ExpandDir(cfgPath))
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := config.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Base.BasePath = utils.ExpandDir(cfg.Base.BasePath)

	if err := cfg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config: %w", err)
	}
	return cfg, nil
}

func execRoot(cmd *cobra.Command, cfg *config.Config) error {
	log.Patch(log.SetLevel(cfg.LogLevel("")))
	logger.Patch(log.SetLevel(cfg.LogLevel("")))

	var password []byte
	if cfg.Dev.Authorities == 1 && !isDevKeyName(cfg.Base.Key) {
		var err error
		password, err = getPassword(cmd, "Enter password to unlock keystore:")
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chain, err := dot.NewChain(cfg, password, nil)
	if err != nil {
		logger.Errorf("failed to create chain: %s", err)
		return err
	}

	logger.Infof("starting %d nodes with slot duration %s...", len(chain.Nodes), chain.Genesis.SlotDuration)
	if err := chain.Run(ctx); err != nil {
		return fmt.Errorf("chain stopped: %w", err)
	}
	logger.Info("stopped")
	return nil
}

func isDevKeyName(name string) bool {
	for _, devName := range keystore.DevKeyNames {
		if strings.EqualFold(devName, name) {
			return true
		}
	}
	return false
}

// getPassword returns the --password flag value, or prompts for it on a terminal.
func getPassword(cmd *cobra.Command, msg string) ([]byte, error) {
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return nil, fmt.Errorf("failed to get --password: %s", err)
	}
	if password != "" {
		return []byte(password), nil
	}

	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return nil, errPasswordRequired
	}

	fmt.Fprintln(cmd.ErrOrStderr(), msg)
	fmt.Fprint(cmd.ErrOrStderr(), "> ")
	entered, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	return entered, nil
}
