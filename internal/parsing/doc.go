// Package parsing holds the pieces shared by every identifier family: the
// Grammar capability, the ordered Registry that dispatches raw strings to the
// first grammar claiming them, the error taxonomy reported to commands, and
// locale-invariant helpers for case folding and list splitting.
package parsing
