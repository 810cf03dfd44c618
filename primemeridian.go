// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "strconv"
import "strings"

// primeMeridianTable maps a named prime meridian to its offset from
// Greenwich as a DMS string (read by parseDegreeString), per samlecuyer-projectron/defs.go's pm_list.
var primeMeridianTable = map[string]string{
	"greenwich": "0dE",
	"lisbon":    "9d07'54.862\"W",
	"paris":     "2d20'14.025\"E",
	"bogota":    "74d04'51.3\"W",
	"madrid":    "3d41'16.58\"W",
	"rome":      "12d27'8.4\"E",
	"bern":      "7d26'22.5\"E",
	"jakarta":   "106d48'27.79\"E",
	"ferro":     "17d40'W",
	"brussels":  "4d22'4.71\"E",
	"stockholm": "18d3'29.8\"E",
	"athens":    "23d42'58.815\"E",
	"oslo":      "10d43'22.5\"E",
}

// lookupPrimeMeridian returns the named meridian's offset in decimal
// degrees east of Greenwich.
func lookupPrimeMeridian(name string) (float64, bool) {
	defn, ok := primeMeridianTable[name]
	if !ok {
		return 0, false
	}
	return parseDegreeString(defn), true
}

// parseDegreeString parses a DMS-or-plain-decimal degree string of the
// form "12d27'8.4\"E" (degrees/minutes/seconds with a trailing compass
// letter) or a bare decimal number, returning decimal degrees.
func parseDegreeString(ds string) float64 {
	var res float64
	if idx := strings.Index(ds, "d"); idx >= 0 {
		f, _ := strconv.ParseFloat(ds[:idx], 64)
		res += f
		ds = ds[idx+1:]
	} else {
		res, _ = strconv.ParseFloat(ds, 64)
		ds = ""
	}
	if idx := strings.Index(ds, "'"); idx >= 0 {
		f, _ := strconv.ParseFloat(ds[:idx], 64)
		res += f / 60
		ds = ds[idx+1:]
	}
	if idx := strings.Index(ds, "\""); idx >= 0 {
		f, _ := strconv.ParseFloat(ds[:idx], 64)
		res += f / 3600
		ds = ds[idx+1:]
	}
	if strings.HasSuffix(ds, "W") || strings.HasSuffix(ds, "S") {
		res *= -1
	}
	return res
}
