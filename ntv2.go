// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// ntv2Header is the fixed-width record layout NTv2's overview and subgrid
// headers share: an 8-byte ASCII field name, then either a float64 or an
// int32 payload padded to 8 bytes. encoding/binary is used directly here
// (no third-party binary-format library appears anywhere in the retrieval
// pack; prl900-image/tiff/consts.go, the one relevant pack file, is itself
// a hand-rolled tag table over encoding/binary rather than a wrapper around
// one — see DESIGN.md).
const ntv2RecordSize = 16

// ParseNTv2 decodes a binary NTv2 (.gsb) grid-shift file into a Grid. NTv2
// stores shifts in arc-seconds, south-to-north, west-to-east; they are
// converted to radians here so Subgrid.interpolate can work in the same
// units as the rest of the engine.
func ParseNTv2(r io.Reader, name string) (Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Grid{}, errors.Wrap(newGridParseError("ntv2: %v", err), "reading grid")
	}
	if len(data) < 11*ntv2RecordSize {
		return Grid{}, newGridParseError("ntv2: file too short for an overview header")
	}

	var order binary.ByteOrder = binary.LittleEndian
	numOrec := int32(order.Uint32(data[8:12]))
	if numOrec != 11 {
		order = binary.BigEndian
		numOrec = int32(order.Uint32(data[8:12]))
		if numOrec != 11 {
			return Grid{}, newGridParseError("ntv2: unrecognized overview header (NUM_OREC=%d)", numOrec)
		}
	}
	numSrec := int32(order.Uint32(data[8+ntv2RecordSize : 12+ntv2RecordSize]))
	numFile := int32(order.Uint32(data[8+2*ntv2RecordSize : 12+2*ntv2RecordSize]))

	off := 11 * ntv2RecordSize
	g := Grid{Name: name}
	for f := int32(0); f < numFile; f++ {
		if off+int(numSrec)*ntv2RecordSize > len(data) {
			return Grid{}, newGridParseError("ntv2: subgrid header truncated")
		}
		sg, consumed, err := parseNTv2Subgrid(data[off:], order)
		if err != nil {
			return Grid{}, err
		}
		g.Subgrids = append(g.Subgrids, sg)
		off += consumed
	}
	return g, nil
}

func parseNTv2Subgrid(data []byte, order binary.ByteOrder) (Subgrid, int, error) {
	readF64 := func(rec int) float64 {
		bits := order.Uint64(data[rec*ntv2RecordSize+8 : rec*ntv2RecordSize+16])
		return math.Float64frombits(bits)
	}
	readI32 := func(rec int) int32 {
		return int32(order.Uint32(data[rec*ntv2RecordSize+8 : rec*ntv2RecordSize+12]))
	}

	sLat := readF64(4) // S_LAT: southern boundary, arc-seconds
	nlat := readF64(5) // N_LAT
	elon := readF64(6) // E_LONG, positive-west convention in NTv2
	wLon := readF64(7) // W_LONG
	latInc := readF64(8)
	lonInc := readF64(9)
	gsCount := readI32(10)

	rows := int(roundNearest((nlat - sLat) / latInc))
	colsReal := int(roundNearest((wLon - elon) / lonInc))
	rows++
	colsReal++
	if rows*colsReal != int(gsCount) {
		return Subgrid{}, 0, newGridParseError("ntv2: GS_COUNT (%d) doesn't match grid dims (%dx%d)", gsCount, colsReal, rows)
	}

	sg := Subgrid{
		LowerLeftLon: -wLon * sec2rad, // NTv2 longitudes increase westward
		LowerLeftLat: sLat * sec2rad,
		CellLon:      lonInc * sec2rad,
		CellLat:      latInc * sec2rad,
		Cols:         colsReal,
		Rows:         rows,
		DLon:         make([]float64, gsCount),
		DLat:         make([]float64, gsCount),
	}

	recOff := 11 * ntv2RecordSize
	for i := 0; i < int(gsCount); i++ {
		base := recOff + i*16
		if base+16 > len(data) {
			return Subgrid{}, 0, newGridParseError("ntv2: grid-shift records truncated")
		}
		dLat := order.Uint32(data[base : base+4])
		dLon := order.Uint32(data[base+4 : base+8])
		sg.DLat[i] = float64(math.Float32frombits(dLat)) * sec2rad
		sg.DLon[i] = -float64(math.Float32frombits(dLon)) * sec2rad
	}

	consumed := recOff + int(gsCount)*16
	return sg, consumed, nil
}

func roundNearest(v float64) float64 {
	if v < 0 {
		return -roundNearest(-v)
	}
	return float64(int64(v + 0.5))
}

// ntv2AsciiField reads one 8-byte, NUL/space-padded ASCII field, used by
// callers that want a header's field name for diagnostics.
func ntv2AsciiField(data []byte) string {
	return strings.TrimRight(string(bytes.TrimRight(data, "\x00")), " ")
}
