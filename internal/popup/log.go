package popup

import (
	"log"
	"sync/atomic"
)

var debugLogging atomic.Bool

// SetDebugLogging turns on the per-click and per-action trace.
func SetDebugLogging(enabled bool) {
	debugLogging.Store(enabled)
}

func logWarn(format string, v ...interface{}) {
	log.Printf("Warning: "+format, v...)
}

func logDebug(format string, v ...interface{}) {
	if debugLogging.Load() {
		log.Printf("popup: "+format, v...)
	}
}
