// Package service coordinates discovery, mapping, the profile store and the
// apply history.
//
// # Services
//
// Session owns the current hardware snapshot. Refresh re-runs discovery and
// swaps the snapshot in one step, so readers never see devices from one scan
// mixed with monitors from another. Apply validates a profile, hands it to
// the mapping engine with the current snapshot and records the report.
//
// ProfileService adds the named-profile workflows on top of a Session:
// listing, saving, applying by name, and import/export through a codec.
//
// # Design Principles
//
// - Everything runs on the caller's goroutine, one command at a time
// - History is best effort: a recorder failure is logged, never returned
// - Dependencies are interfaces so tests can script them
package service
