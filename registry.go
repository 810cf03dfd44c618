// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"fmt"
	"strings"
	"sync"
)

// Registry is a process-wide, concurrency-safe table of known coordinate
// reference systems, keyed by "authority:code" with a case-insensitive
// authority (spec §4.10). Grounded on MichiHo/go-proj/context.go's
// mutex-guarded Context type.
type Registry struct {
	mu  sync.RWMutex
	crs map[string]*ProjectionDef
}

func registryKey(authority, code string) string {
	return strings.ToUpper(authority) + ":" + code
}

// NewRegistry returns an empty registry. Most callers want the
// package-level DefaultRegistry instead.
func NewRegistry() *Registry {
	return &Registry{crs: make(map[string]*ProjectionDef)}
}

// Set registers (or replaces) a CRS under authority:code.
func (r *Registry) Set(authority, code string, def *ProjectionDef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	def.Code = registryKey(authority, code)
	r.crs[def.Code] = def
}

// Get looks up a previously-registered CRS.
func (r *Registry) Get(authority, code string) (*ProjectionDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.crs[registryKey(authority, code)]
	return d, ok
}

// Has reports whether authority:code is registered.
func (r *Registry) Has(authority, code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.crs[registryKey(authority, code)]
	return ok
}

// Remove deregisters a CRS, a no-op if it wasn't registered.
func (r *Registry) Remove(authority, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.crs, registryKey(authority, code))
}

// Alias registers an existing CRS under an additional authority:code pair.
func (r *Registry) Alias(authority, code, aliasAuthority, aliasCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.crs[registryKey(authority, code)]
	if !ok {
		return newUnknownCRS(registryKey(authority, code))
	}
	r.crs[registryKey(aliasAuthority, aliasCode)] = d
	return nil
}

// Reset clears every registered CRS and reseeds the built-in set.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.crs = make(map[string]*ProjectionDef)
	r.mu.Unlock()
	seedRegistry(r)
}

// DefaultRegistry is the package-level registry every Lookup/Register
// convenience function consults, seeded once at init time with the common
// geographic, web-Mercator, NAD83, UTM and UPS definitions spec §4.10
// names.
var DefaultRegistry = NewRegistry()

func init() { seedRegistry(DefaultRegistry) }

func mustParse(s string) *ProjectionDef {
	def, err := ParseProjString(s)
	if err != nil {
		panic(fmt.Sprintf("projectron: invalid built-in definition %q: %v", s, err))
	}
	return def
}

func seedRegistry(r *Registry) {
	r.Set("EPSG", "4326", mustParse("+proj=longlat +ellps=WGS84 +datum=WGS84 +no_defs"))
	r.Set("EPSG", "4269", mustParse("+proj=longlat +ellps=GRS80 +datum=NAD83 +no_defs"))
	r.Set("EPSG", "3857", mustParse("+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +nadgrids=@null +no_defs"))
	if err := r.Alias("EPSG", "3857", "EPSG", "900913"); err != nil {
		panic(err)
	}

	for zone := 1; zone <= 60; zone++ {
		north := fmt.Sprintf("+proj=utm +zone=%d +ellps=WGS84 +datum=WGS84 +units=m +no_defs", zone)
		south := north + " +south"
		r.Set("EPSG", fmt.Sprintf("326%02d", zone), mustParse(north))
		r.Set("EPSG", fmt.Sprintf("327%02d", zone), mustParse(south))
	}

	r.Set("EPSG", "5041", mustParse("+proj=stere +lat_0=90 +lat_ts=90 +lon_0=0 +k=0.994 +x_0=2000000 +y_0=2000000 +ellps=WGS84 +units=m +no_defs"))
	r.Set("EPSG", "5042", mustParse("+proj=stere +lat_0=-90 +lat_ts=-90 +lon_0=0 +k=0.994 +x_0=2000000 +y_0=2000000 +ellps=WGS84 +units=m +no_defs"))
}

// Lookup resolves authority:code (e.g. "EPSG:4326") against the default
// registry.
func Lookup(code string) (*ProjectionDef, error) {
	parts := strings.SplitN(code, ":", 2)
	if len(parts) != 2 {
		return nil, newUnknownCRS(code)
	}
	d, ok := DefaultRegistry.Get(parts[0], parts[1])
	if !ok {
		return nil, newUnknownCRS(code)
	}
	return d, nil
}
