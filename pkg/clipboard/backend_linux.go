//go:build linux

package clipboard

// OneShotBackend is the backend for a process that exits right after a
// capture. X11 and Wayland drop content written by the native backend once
// the writing process is gone; xclip, xsel and wl-copy keep serving it.
const OneShotBackend = BackendText
