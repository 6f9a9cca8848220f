//go:build !release

package diag

// Enabled reports whether diagnostics are compiled in
const Enabled = true
