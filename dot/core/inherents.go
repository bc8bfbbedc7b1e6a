// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package core

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ChainSafe/gossamer-aura/dot/types"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// timestamp.set call of the development runtime
const (
	timestampModuleIndex uint8 = 3
	timestampCallIndex   uint8 = 0
)

type timestampCall struct {
	Module uint8
	Call   uint8
	Moment uint64
}

// NewTimestampInherent returns the inherent extrinsic setting the block timestamp, in milliseconds.
func NewTimestampInherent(now time.Time) (types.Extrinsic, error) {
	buffer := bytes.NewBuffer(nil)
	err := scale.NewEncoder(buffer).Encode(timestampCall{
		Module: timestampModuleIndex,
		Call:   timestampCallIndex,
		Moment: uint64(now.UnixMilli()),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding timestamp inherent: %w", err)
	}
	return buffer.Bytes(), nil
}

// DecodeTimestampInherent returns the timestamp set by the extrinsic.
func DecodeTimestampInherent(ext types.Extrinsic) (time.Time, error) {
	var call timestampCall
	if err := scale.NewDecoder(bytes.NewReader(ext)).Decode(&call); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMissingTimestamp, err)
	}
	if call.Module != timestampModuleIndex || call.Call != timestampCallIndex {
		return time.Time{}, fmt.Errorf("%w: call %d.%d", ErrMissingTimestamp, call.Module, call.Call)
	}
	return time.UnixMilli(int64(call.Moment)), nil
}
