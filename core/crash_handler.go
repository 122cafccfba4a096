package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// resetHook restores the terminal before a crash report is printed
var resetHook atomic.Pointer[func()]

// SetResetHook registers the routine that puts the terminal back into a sane state
// Typically the tcell screen's Fini, installed once the screen is initialized
func SetResetHook(fn func()) {
	if fn == nil {
		resetHook.Store(nil)
		return
	}
	resetHook.Store(&fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := resetHook.Load(); fn != nil {
		(*fn)()
	}

	// Raw mode may still be half-active, \r\n avoids zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
