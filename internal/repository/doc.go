// Package repository defines the data access interfaces for wacomsync.
//
// Profiles live in a plain JSON document (see package profile) because users
// edit and share them. The repository layer stores what the program did: a
// history of apply runs with one row per device outcome. The implementation
// is in the sqlite subpackage.
//
// # Schema Migration
//
// The sqlite repository creates its tables on open, so a fresh history file
// needs no setup step.
//
// # Testing
//
// The sqlite repository is tested with in-memory databases.
package repository
