// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package utils

import (
	"fmt"
	"os"
	"os/user"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/ChainSafe/chaindb"
)

const (
	// DefaultDatabaseDir directory inside basepath where database contents are stored
	DefaultDatabaseDir = "db"
	// KeystoreDirName is the directory inside basepath holding key files
	KeystoreDirName = "keystore"
	// KeyFileExt is the extension of encrypted key files
	KeyFileExt = ".key"
)

// SetupDatabase will return an instance of database based on basepath
func SetupDatabase(basepath string, inMemory bool) (*chaindb.BadgerDB, error) {
	return chaindb.NewBadgerDB(&chaindb.Config{
		DataDir:  filepath.Join(basepath, DefaultDatabaseDir),
		InMemory: inMemory,
	})
}

// PathExists returns true if the named file or directory exists, otherwise false
func PathExists(p string) bool {
	_, err := os.Stat(p)
	return !os.IsNotExist(err)
}

// HomeDir returns the user's current HOME directory
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// ExpandDir expands a tilde prefix path to a full home path
func ExpandDir(targetPath string) string {
	if strings.HasPrefix(targetPath, "~\\") || strings.HasPrefix(targetPath, "~/") {
		if homeDir := HomeDir(); homeDir != "" {
			targetPath = homeDir + targetPath[1:]
		}
	} else if strings.HasPrefix(targetPath, ".\\") || strings.HasPrefix(targetPath, "./") {
		targetPath, _ = filepath.Abs(targetPath)
	}
	return path.Clean(os.ExpandEnv(targetPath))
}

// BasePath attempts to create a data directory using the given name within the
// aura directory within the user's HOME directory, returns absolute path
// or, if unable to locate HOME directory, returns within current directory
func BasePath(name string) string {
	home := HomeDir()
	if home == "" {
		return name
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Aura", name)
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Aura", name)
	default:
		return filepath.Join(home, ".aura", name)
	}
}

// KeystoreDir returns the absolute filepath of the keystore directory,
// creating it if it does not exist.
func KeystoreDir(basepath string) (keystorepath string, err error) {
	keystorepath, err = filepath.Abs(filepath.Join(ExpandDir(basepath), KeystoreDirName))
	if err != nil {
		return "", fmt.Errorf("failed to create absolute filepath: %w", err)
	}

	if err = os.MkdirAll(keystorepath, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create keystore directory: %w", err)
	}

	return keystorepath, nil
}

// KeystoreFilepaths returns the sorted paths of all key files in the basepath's keystore
func KeystoreFilepaths(basepath string) ([]string, error) {
	keystorepath, err := KeystoreDir(basepath)
	if err != nil {
		return nil, err
	}

	files, err := os.ReadDir(keystorepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore directory: %w", err)
	}

	var keys []string
	for _, f := range files {
		if !f.IsDir() && filepath.Ext(f.Name()) == KeyFileExt {
			keys = append(keys, filepath.Join(keystorepath, f.Name()))
		}
	}
	sort.Strings(keys)

	return keys, nil
}
