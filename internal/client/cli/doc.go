// Package cli provides the interactive landkeeper admin console.
//
// It wires configuration, the AdminService client and a read-eval-print
// loop. Typical flow: sign in, browse and edit collections, stage files and
// save, and work through the notification bell while new notices stream in
// from the server.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
