// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"strconv"
	"strings"
)

// translator is the shape every projection's forward/inverse transform
// takes: geodetic (or projected) in, transformed out, or a domain error.
type translator func(float64, float64) (float64, float64, error)

// paramset is a PROJ-string's parsed key/value bag, keyed without the
// leading "+". Bare flags (no "=value") are recorded with an empty value
// and read back through bool().
type paramset map[string]string

func (p paramset) string(s string) (v string, ok bool) {
	v, ok = p[s]
	return v, ok
}

func (p paramset) bool(s string) (b bool, okay bool) {
	var err error
	if v, ok := p[s]; ok {
		if v == "" {
			return true, true
		}
		b, err = strconv.ParseBool(v)
		okay = err == nil
	}
	return
}

func (p paramset) float(s string) (f float64, okay bool) {
	var err error
	if v, ok := p[s]; ok {
		f, err = strconv.ParseFloat(v, 64)
		okay = err == nil
	}
	return
}

func (p paramset) degree(s string) (f float64, okay bool) {
	if v, ok := p[s]; ok {
		return parseDegreeString(v) * d2r, ok
	}
	return
}

// keyVal splits a single "+key=value" (or "+flag") token, already stripped
// of its leading "+", on the first "=".
func keyVal(s string) (key string, val string) {
	idx := strings.Index(s, "=")
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx+1:]
}
