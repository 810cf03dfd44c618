// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "fmt"

// Kind classifies the errors projectron can return. Parse-time problems and
// per-point transform failures both surface to the caller as an *Error; a
// failed per-point call also returns NaN coordinates (see Point.IsValid).
type Kind int

const (
	// KindParseError marks malformed PROJ-string/WKT/PROJJSON surface syntax.
	KindParseError Kind = iota
	// KindUnknownCRS marks a registry lookup miss.
	KindUnknownCRS
	// KindUnknownProjection marks a proj_name not in the catalogue.
	KindUnknownProjection
	// KindMissingParameter marks a required projection parameter absent
	// (e.g. UTM with no zone, LCC with no lat_1).
	KindMissingParameter
	// KindGridOutOfBounds marks a point outside all subgrids of a mandatory grid.
	KindGridOutOfBounds
	// KindGridParseError marks malformed NTv2/GeoTIFF bytes.
	KindGridParseError
	// KindNonconvergent marks an iterative solver that exceeded its cap.
	KindNonconvergent
)

func (k Kind) String() string {
	switch k {
	case KindParseError:
		return "ParseError"
	case KindUnknownCRS:
		return "UnknownCRS"
	case KindUnknownProjection:
		return "UnknownProjection"
	case KindMissingParameter:
		return "MissingParameter"
	case KindGridOutOfBounds:
		return "GridOutOfBounds"
	case KindGridParseError:
		return "GridParseError"
	case KindNonconvergent:
		return "Nonconvergent"
	default:
		return "Unknown"
	}
}

// Error is the error type returned from parser entry points, registry
// lookups, catalogue lookups, the grid engine, and per-point domain failures
// in Projection.Forward/Inverse and Transformer.Transform, which pair it
// with NaN coordinates. Transformer.TransformAll stops at the first such
// error.
type Error struct {
	Kind   Kind
	Reason string
	// Solver and Residual are set only for KindNonconvergent.
	Solver   string
	Residual float64
}

func (e *Error) Error() string {
	if e.Kind == KindNonconvergent {
		return fmt.Sprintf("%s: %s did not converge (residual %g)", e.Kind, e.Solver, e.Residual)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func newParseError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindParseError, Reason: fmt.Sprintf(format, args...)}
}

func newUnknownCRS(code string) *Error {
	return &Error{Kind: KindUnknownCRS, Reason: fmt.Sprintf("no such CRS %q", code)}
}

func newUnknownProjection(name string) *Error {
	return &Error{Kind: KindUnknownProjection, Reason: fmt.Sprintf("no such projection %q", name)}
}

func newMissingParameter(proj, param string) *Error {
	return &Error{Kind: KindMissingParameter, Reason: fmt.Sprintf("%s: missing required parameter %q", proj, param)}
}

func newGridOutOfBounds(lon, lat float64) *Error {
	return &Error{Kind: KindGridOutOfBounds, Reason: fmt.Sprintf("point (%g, %g) outside mandatory grid", lon, lat)}
}

func newGridParseError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindGridParseError, Reason: fmt.Sprintf(format, args...)}
}

func newNonconvergent(solver string, residual float64) *Error {
	return &Error{Kind: KindNonconvergent, Solver: solver, Residual: residual}
}
