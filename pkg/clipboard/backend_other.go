//go:build !linux

package clipboard

// OneShotBackend is the backend for a process that exits right after a
// capture. The OS keeps native clipboard writes after the writer exits.
const OneShotBackend = BackendNative
