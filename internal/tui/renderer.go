package tui

import "github.com/SaurabViena/heirloom/models"

var stateLabels = map[models.DecryptionState]string{
	models.StateFetchingHandles:     "fetching handles",
	models.StateAllEmpty:            "nothing stored",
	models.StateRequestingSignature: "waiting for your signature",
	models.StateSigning:             "checking signature",
	models.StateDecrypting:          "decrypting",
	models.StateReassembling:        "reassembling",
	models.StateDone:                "done",
	models.StateTimedOut:            "timed out",
	models.StateFailed:              "failed",
	models.StateCancelled:           "cancelled",
}

func renderState(s models.DecryptionState) string {
	label, ok := stateLabels[s]
	if !ok {
		label = s.String()
	}
	switch s {
	case models.StateDone, models.StateAllEmpty:
		return successStyle.Render("✓ " + label)
	case models.StateFailed, models.StateTimedOut:
		return errorStyle.Render("✗ " + label)
	case models.StateCancelled:
		return warnStyle.Render("– " + label)
	default:
		return helpStyle.Render("… " + label)
	}
}
