// Package cli provides the interactive shelfkeeper command-line client.
//
// It wires configuration, the gRPC client and a REPL. Supported commands:
//
//   - register, login, logout
//   - list, get <id>, search [term], books
//   - update <id>, delete <id> (require login)
//   - help, exit | quit
//
// Passwords are read without echo and wiped after use.
package cli
