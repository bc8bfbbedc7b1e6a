// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ChainSafe/gossamer-aura/lib/common"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// EquivocationProof represents an equivocation proof. An equivocation happens when
// an authority produces more than one block on the same slot. The proof holds the
// identities of the two distinct blocks, both claiming the slot and signed by the
// offender.
type EquivocationProof struct {
	// The slot at which the equivocation happened.
	Slot uint64
	// The public key of the equivocator.
	Offender AuthorityID
	// The first block observed for the slot.
	FirstBlock common.Hash
	// The second, conflicting, block observed for the slot.
	SecondBlock common.Hash
}

// String returns the proof as a string
func (p EquivocationProof) String() string {
	return fmt.Sprintf("EquivocationProof Slot=%d Offender=%s FirstBlock=%s SecondBlock=%s",
		p.Slot, p.Offender, p.FirstBlock, p.SecondBlock)
}

// EncodeEquivocationProofs returns the SCALE encoding of the proof list.
func EncodeEquivocationProofs(proofs []EquivocationProof) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	if err := scale.NewEncoder(buffer).Encode(proofs); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// DecodeEquivocationProofs decodes a SCALE encoded proof list.
func DecodeEquivocationProofs(in []byte) (proofs []EquivocationProof, err error) {
	err = decodeAll(in, func(r io.Reader) error {
		return scale.NewDecoder(r).Decode(&proofs)
	})
	return proofs, err
}
