package models

// DecryptionState is one step of a single decryption attempt.
type DecryptionState int

const (
	StateIdle DecryptionState = iota
	StateFetchingHandles
	StateAllEmpty
	StateRequestingSignature
	StateSigning
	StateDecrypting
	StateReassembling
	StateDone
	StateTimedOut
	StateFailed
	StateCancelled
)

var decryptionStateNames = [...]string{
	StateIdle:                "idle",
	StateFetchingHandles:     "fetching_handles",
	StateAllEmpty:            "all_empty",
	StateRequestingSignature: "requesting_signature",
	StateSigning:             "signing",
	StateDecrypting:          "decrypting",
	StateReassembling:        "reassembling",
	StateDone:                "done",
	StateTimedOut:            "timed_out",
	StateFailed:              "failed",
	StateCancelled:           "cancelled",
}

func (s DecryptionState) String() string {
	if s < 0 || int(s) >= len(decryptionStateNames) {
		return "unknown"
	}
	return decryptionStateNames[s]
}

// Terminal reports whether no further transition follows s.
func (s DecryptionState) Terminal() bool {
	switch s {
	case StateDone, StateTimedOut, StateFailed, StateCancelled:
		return true
	default:
		return false
	}
}
