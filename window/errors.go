package window

import (
	"errors"
	"fmt"
)

// Kind classifies a native window failure.
type Kind uint8

const (
	// KindCreation means window construction failed; no usable handle
	// exists and the caller must not proceed with it.
	KindCreation Kind = iota + 1
	// KindState means the platform rejected one state change; the window
	// remains valid and further calls are fine.
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindCreation:
		return "creation"
	case KindState:
		return "state"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Matching targets for errors.Is.
var (
	ErrCreation = errors.New("window creation failed")
	ErrState    = errors.New("window state change rejected")
)

// Error is a native window failure with the platform diagnostic captured at
// the moment the call failed. It is never mutated after construction.
type Error struct {
	Op     string // the operation that failed, e.g. "create", "set_fullscreen"
	Kind   Kind
	Detail string // platform diagnostic, verbatim
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("window: %s: %s error", e.Op, e.Kind)
	}
	return fmt.Sprintf("window: %s: %s", e.Op, e.Detail)
}

// Is matches the kind sentinels ErrCreation and ErrState.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrCreation:
		return e.Kind == KindCreation
	case ErrState:
		return e.Kind == KindState
	}
	return false
}

// translate is the single success/failure boundary for fallible driver
// calls. It must run inline with the failing call: the driver's last-error
// text is captured here, before any later call can overwrite it.
func translate(d Driver, ok bool, kind Kind, op string) error {
	if ok {
		return nil
	}
	return &Error{Op: op, Kind: kind, Detail: d.LastError()}
}
