// Package cli provides the interactive herbalist command-line client.
//
// It wires configuration, the device key-value store, the secure session
// mirror, the mock auth service and the herb catalog behind a small REPL.
//
// Key features:
//   - login / signup / guest / logout against the local mock accounts
//   - herbs, letters and jump: the alphabetical herb index
//   - search: herb search by name, slug or family
//   - home: the category feed with per-category counts
//
// Catalog commands are protected: without a session they redirect to the
// login prompt. The REPL is started via App.Run(ctx), which blocks until the
// user exits.
package cli
