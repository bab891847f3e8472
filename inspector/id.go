// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ID is the stable identity of a widget within a [Surface]. Child IDs
// are derived from the parent with [ID.With], so a widget keeps its
// identity across frames as long as its path from the root does not
// change.
type ID uint64

// NilID is the zero [ID].
const NilID ID = 0

// NewID returns the root [ID] for the given seed string.
func NewID(seed string) ID {
	return ID(xxhash.Sum64String(seed))
}

// With derives the child [ID] for the given part, which is rendered
// with fmt.Sprint. Deriving with the same part always yields the same
// child.
func (id ID) With(part any) ID {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	d.Write(buf[:])
	d.WriteString(fmt.Sprint(part))
	return ID(d.Sum64())
}
