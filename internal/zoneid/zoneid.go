// Package zoneid is the time-zone-identifier-registry collaborator.
//
// It is deliberately narrow, per chronofield's scope: a membership test and
// an enumeration, nothing else. It does not parse tzdata, does not resolve
// offsets, and does not know about DST transitions - the format tree only
// ever needs to know whether a string like "Europe/London" or "UTC" is a
// recognized zone identifier, grounded on the teacher's zones.go, which
// solved the much larger problem of actually loading tzdata. This module
// only needs the membership question, so the tzdata directory walk is not
// carried over - see DESIGN.md.
package zoneid

import "sync"

// Registry answers membership and enumeration questions about a fixed set
// of time-zone identifiers.
type Registry struct {
	ids map[string]struct{}
}

// New builds a Registry containing exactly the supplied identifiers.
func New(ids []string) *Registry {
	r := &Registry{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		r.ids[id] = struct{}{}
	}
	return r
}

// Contains reports whether id is a known time-zone identifier.
func (r *Registry) Contains(id string) bool {
	if r == nil {
		return false
	}
	_, ok := r.ids[id]
	return ok
}

// All returns every identifier known to the registry, in no particular order.
func (r *Registry) All() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	return out
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the package-wide registry of commonly used IANA time-zone
// identifiers plus "UTC" and "Z". A time-zone-id directive built with a nil
// registry (such as the one pattern letters 'VV' produce) parses against
// this registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New(commonIdentifiers)
	})
	return defaultRegistry
}

// commonIdentifiers is a representative, non-exhaustive subset of the IANA
// time zone database, sufficient for tests and for callers that do not
// supply their own registry. Production use is expected to construct a
// Registry from the caller's own authoritative zone source (e.g. walking
// the system tzdata directory) and pass it to the builder explicitly.
var commonIdentifiers = []string{
	"UTC", "Z",
	"Africa/Cairo", "Africa/Johannesburg", "Africa/Lagos", "Africa/Nairobi",
	"America/Anchorage", "America/Bogota", "America/Chicago", "America/Denver",
	"America/Los_Angeles", "America/Mexico_City", "America/New_York",
	"America/Sao_Paulo", "America/Toronto",
	"Asia/Dubai", "Asia/Hong_Kong", "Asia/Kolkata", "Asia/Shanghai",
	"Asia/Singapore", "Asia/Tokyo", "Asia/Seoul",
	"Australia/Melbourne", "Australia/Sydney",
	"Europe/Amsterdam", "Europe/Berlin", "Europe/London", "Europe/Madrid",
	"Europe/Moscow", "Europe/Paris", "Europe/Rome", "Europe/Zurich",
	"Pacific/Auckland", "Pacific/Honolulu",
}
