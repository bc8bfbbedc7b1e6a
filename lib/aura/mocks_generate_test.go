// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

//go:generate mockgen -destination=mocks_test.go -package $GOPACKAGE . AuthorityResolver,ChainHead,HeaderBackend,FinalityOracle,Keystore,BlockBuilder,BlockImporter,Announcer,EquivocationReporter,SyncOracle,AuxStore
