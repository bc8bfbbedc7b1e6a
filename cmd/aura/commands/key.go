// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/ChainSafe/gossamer-aura/lib/crypto"
	"github.com/ChainSafe/gossamer-aura/lib/crypto/ed25519"
	"github.com/ChainSafe/gossamer-aura/lib/crypto/sr25519"
	"github.com/ChainSafe/gossamer-aura/lib/keystore"
	"github.com/ChainSafe/gossamer-aura/lib/utils"

	bip39 "github.com/cosmos/go-bip39"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newKeyCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the authority keys of the keystore",
		Long: `Manage the encrypted authority keys stored in the keystore directory.
Usage:
	aura key generate --base-path ~/.aura/aura --password secret
	aura key generate --key-type ed25519
	aura key list`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Generate an authority key and store it encrypted in the keystore",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseConfig(cmd, v)
			if err != nil {
				return err
			}

			password, err := getPassword(cmd, "Enter password to encrypt keystore file:")
			if err != nil {
				return err
			}

			return generateKey(cmd, cfg.Base.BasePath, cfg.Base.KeyType, password)
		},
	}, &cobra.Command{
		Use:   "list",
		Short: "List the keys of the keystore",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseConfig(cmd, v)
			if err != nil {
				return err
			}
			return listKeys(cmd, cfg.Base.BasePath)
		},
	})

	return cmd
}

// generateKey creates a keypair of the key type and writes it to the keystore
// directory of the base path. Sr25519 keys are derived from a new mnemonic.
func generateKey(cmd *cobra.Command, basepath string, keyType crypto.KeyType, password []byte) error {
	var (
		kp       crypto.Keypair
		mnemonic string
	)
	switch keyType {
	case crypto.Sr25519Type:
		entropy, err := bip39.NewEntropy(128)
		if err != nil {
			return fmt.Errorf("generating entropy: %w", err)
		}
		mnemonic, err = bip39.NewMnemonic(entropy)
		if err != nil {
			return fmt.Errorf("generating mnemonic: %w", err)
		}
		kp, err = sr25519.NewKeypairFromMnenomic(mnemonic, "")
		if err != nil {
			return fmt.Errorf("deriving keypair: %w", err)
		}
	case crypto.Ed25519Type:
		var err error
		kp, err = ed25519.GenerateKeypair()
		if err != nil {
			return fmt.Errorf("generating keypair: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", crypto.ErrUnknownKeyType, keyType)
	}

	keystorepath, err := utils.KeystoreDir(basepath)
	if err != nil {
		return err
	}

	fp := filepath.Join(keystorepath, kp.Public().Hex()+utils.KeyFileExt)
	if err := keystore.EncryptAndWriteToFile(fp, kp.Public(), kp.Private(), password); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "key type: %s\n", keyType)
	fmt.Fprintf(out, "address: %s\n", kp.Public().Address())
	fmt.Fprintf(out, "public key: %s\n", kp.Public().Hex())
	fmt.Fprintf(out, "file: %s\n", fp)
	if mnemonic != "" {
		fmt.Fprintf(out, "mnemonic: %s\n", mnemonic)
	}
	return nil
}

func listKeys(cmd *cobra.Command, basepath string) error {
	files, err := utils.KeystoreFilepaths(basepath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, file := range files {
		pub, err := keystore.ReadPublicKeyFromFile(file)
		if err != nil {
			logger.Warnf("skipping key file %s: %s", file, err)
			continue
		}
		fmt.Fprintf(out, "[%d] %s %s\n", i, pub.Address(), filepath.Base(file))
	}
	return nil
}
