// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/gossamer-aura/lib/common"
	"github.com/ChainSafe/gossamer-aura/lib/crypto"
	"github.com/ChainSafe/gossamer-aura/lib/keystore"
	"github.com/ChainSafe/gossamer-aura/lib/utils"
)

// isDevKeyName returns true if the name is one of the development key names.
func isDevKeyName(name string) bool {
	for _, devName := range keystore.DevKeyNames {
		if strings.EqualFold(devName, name) {
			return true
		}
	}
	return false
}

// newDevKeystore returns an aura keystore holding the development key with the name.
func newDevKeystore(name string, keyType crypto.KeyType) (keystore.Keystore, error) {
	ks := keystore.NewBasicKeystore(keystore.AuraName, keyType)
	if err := keystore.LoadKeystore(name, ks); err != nil {
		return nil, fmt.Errorf("loading development key %s: %w", name, err)
	}
	return ks, nil
}

// loadKeystore returns an aura keystore holding the key with the SS58 address
// from the encrypted key files of the base path.
func loadKeystore(basepath, address string, keyType crypto.KeyType, password []byte) (keystore.Keystore, error) {
	files, err := utils.KeystoreFilepaths(basepath)
	if err != nil {
		return nil, err
	}

	ks := keystore.NewBasicKeystore(keystore.AuraName, keyType)
	for _, file := range files {
		priv, err := keystore.ReadFromFileAndDecrypt(file, password)
		if err != nil {
			logger.Debugf("skipping key file %s: %s", file, err)
			continue
		}

		kp, err := keystore.PrivateKeyToKeypair(priv)
		if err != nil {
			return nil, fmt.Errorf("reading key file %s: %w", file, err)
		}

		if kp.Public().Address() != common.Address(address) {
			continue
		}

		if err := ks.Insert(kp); err != nil {
			return nil, fmt.Errorf("inserting key %s: %w", address, err)
		}
		return ks, nil
	}

	return nil, fmt.Errorf("%w: %s", errNoKeyInKeystore, address)
}
