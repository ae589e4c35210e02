package chasm

import (
	"errors"
	"fmt"
	"sync"
)

// ErrorCode identifies one of the error kinds from spec §7. It is carried
// alongside the ordinary Go error so LastError can report it the way
// the original C API's last_error(out_code) does.
type ErrorCode int

const (
	ErrNone ErrorCode = iota
	ErrInvalidArgument
	ErrNoSuchMnemonic
	ErrNoSuchForm
	ErrOperandMismatch
	ErrSizeUnavailable
	ErrPrefixConflict
	ErrInvalidHighByteWithRex
	ErrRelOutOfRange
	ErrOutOfMemory
)

// Sentinel errors, one per spec §7 error kind. Compare with errors.Is;
// asmError additionally carries the formatted detail message and code, the
// same pairing the teacher reports through a single fmt.Errorf per failure
// but spec.md's Error Channel (§4.8) wants machine-readable too.
var (
	ErrBadArgument        = errors.New("invalid argument")
	ErrUnknownMnemonic    = errors.New("no such mnemonic")
	ErrNoMatchingForm     = errors.New("no variant matches operand arity")
	ErrShapeMismatch      = errors.New("operand shape mismatch")
	ErrMemSizeUnavailable = errors.New("explicit memory size has no encoding for this mnemonic")
	ErrHintConflict       = errors.New("prefix hint incompatible with every matching variant")
	ErrHighByteWithRex    = errors.New("high-byte register combined with an operand that forces REX")
	ErrRelRange           = errors.New("resolved relative displacement out of range")
	ErrAllocFailed        = errors.New("buffer growth failed")
)

// asmError pairs a sentinel (for errors.Is) with instruction-specific detail
// and the ErrorCode spec §7 names, and records itself in the process-wide
// last-error slot as a side effect of being constructed -- mirroring how the
// teacher's Assembler.err / Err() works per-instance, generalized to the
// global accessor spec §4.8 additionally asks for.
type asmError struct {
	code    ErrorCode
	sentinel error
	detail  string
}

func (e *asmError) Error() string { return e.detail }
func (e *asmError) Unwrap() error { return e.sentinel }

func newErr(code ErrorCode, sentinel error, format string, args ...interface{}) error {
	e := &asmError{code: code, sentinel: sentinel, detail: fmt.Sprintf(format, args...)}
	setLastError(e)
	return e
}

// last-error channel (spec §4.8): a process-wide slot set only by the
// assembler, read via LastError. Go has no ambient thread-local storage, so
// unlike the teacher's per-Assembler Err() (here the returned error remains
// the primary, idiomatic way to check a failure), this global slot
// is guarded by a mutex rather than being thread-local -- a deliberate,
// documented resolution of spec §4.8's "thread-local if available,
// otherwise single-threaded" clause (see DESIGN.md).
var lastErrMu sync.Mutex
var lastErr error

func setLastError(err error) {
	lastErrMu.Lock()
	lastErr = err
	lastErrMu.Unlock()
}

// LastError returns the message and code for the most recent error set by
// any Assemble/EmitOne call in this process, or ("", ErrNone) if
// none has occurred yet. Reading does not clear the slot.
func LastError() (string, ErrorCode) {
	lastErrMu.Lock()
	defer lastErrMu.Unlock()
	if lastErr == nil {
		return "", ErrNone
	}
	if ae, ok := lastErr.(*asmError); ok {
		return ae.detail, ae.code
	}
	return lastErr.Error(), ErrNone
}
