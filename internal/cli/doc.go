// Package cli provides the interactive userhub command-line client.
//
// It wires configuration, the local session database, the API gateway, and
// an interactive REPL. Typical flow: restore any persisted session at
// startup, then execute user commands.
//
// Key features:
//   - Register / Login / Logout with local form validation
//   - Profile display and editing
//   - Password management: change, forgot, reset
//   - Email verification
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
