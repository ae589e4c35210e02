package chasm

import "log"

// debugLogging gates the one diagnostic spec §9 asks for: a warning when a
// memory operand's scale is silently folded to 1 because it wasn't 1/2/4/8.
// Off by default, since chasm is a leaf library and shouldn't write to
// stderr unless a caller opts in -- the same posture the teacher takes by
// carrying no logging dependency at all for its hot path.
var debugLogging bool

// SetDebugLogging turns the scale-fold warning on or off for this process.
func SetDebugLogging(enabled bool) { debugLogging = enabled }

func warnScaleFold(scale uint8) {
	if debugLogging {
		log.Printf("chasm: illegal memory operand scale %d folded to 1", scale)
	}
}
