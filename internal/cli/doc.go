// Package cli defines the Cobra command tree for the fsdevtools CLI. Each
// file in this package registers one top-level command (export, extsync,
// module, project, resolve, etc.) with the root command. Commands resolve
// their raw arguments through the identifier, webapp and permission grammars
// and hand typed requests to a remote.Client.
package cli
