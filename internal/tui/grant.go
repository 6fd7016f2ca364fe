package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// GrantSummary describes a grant in plain words.
func GrantSummary(typed apitypes.TypedData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Decryption grant") + "\n")

	if contracts, ok := typed.Message["contractAddresses"].([]interface{}); ok {
		for _, c := range contracts {
			fmt.Fprintf(&b, "%s%v\n", labelStyle.Render("contract"), c)
		}
	}

	start, _ := typed.Message["startTimestamp"].(string)
	if sec, err := strconv.ParseInt(start, 10, 64); err == nil {
		fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("from"), time.Unix(sec, 0).Local().Format(timeLayout))
	}
	duration, _ := typed.Message["durationSeconds"].(string)
	if sec, err := strconv.ParseInt(duration, 10, 64); err == nil {
		fmt.Fprintf(&b, "%s%s", labelStyle.Render("valid for"), (time.Duration(sec) * time.Second).String())
	}
	return strings.TrimRight(b.String(), "\n")
}
