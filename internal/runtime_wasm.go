//go:build wasm

package internal

// goid has no wasm support; the whole program counts as one goroutine.
func goroutineID() int64 {
	return 1
}
