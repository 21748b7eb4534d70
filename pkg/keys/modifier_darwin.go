//go:build darwin

package keys

// Modifier is the key held for the copy chord on this platform.
const Modifier = "cmd"
