// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package aura implements slot based authority round block authoring and verification.
// Each slot is owned by the authority at index slot modulo the authority count.
package aura

import "github.com/ChainSafe/gossamer-aura/internal/log"

var logger = log.NewFromGlobal(log.AddContext("pkg", "aura"))
