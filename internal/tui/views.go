package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/internal/service"
	"github.com/SaurabViena/heirloom/models"
)

const timeLayout = "2006-01-02 15:04"

// RenderCredentials lists an owner's credential names by index.
func RenderCredentials(out io.Writer, owner common.Address, names []string) {
	_, _ = fmt.Fprintln(out, titleStyle.Render("Credentials of "+owner.Hex()))
	if len(names) == 0 {
		_, _ = fmt.Fprintln(out, helpStyle.Render("  (none)"))
		return
	}
	for i, name := range names {
		_, _ = fmt.Fprintf(out, "  %3d  %s\n", i, name)
	}
}

// RenderRevealed prints decrypted attributes in layout order.
func RenderRevealed(out io.Writer, layout models.CredentialLayout, revealed models.Revealed) {
	lines := make([]string, 0, len(layout))
	for _, attr := range layout {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(string(attr.ID)),
			revealed[attr.ID],
		))
	}
	_, _ = fmt.Fprintln(out, boxStyle.Render(strings.Join(lines, "\n")))
}

// RenderInherited prints received credentials grouped by owner.
func RenderInherited(out io.Writer, groups []service.InheritedCredentials) {
	if len(groups) == 0 {
		_, _ = fmt.Fprintln(out, helpStyle.Render("No credentials have been shared with you."))
		return
	}
	for _, g := range groups {
		_, _ = fmt.Fprintf(out, "%s %s\n", titleStyle.Render(g.Owner.Hex()), helpStyle.Render("("+g.Scope.String()+")"))
		if len(g.Credentials) == 0 {
			_, _ = fmt.Fprintln(out, helpStyle.Render("  (no credentials yet)"))
		}
		for _, c := range g.Credentials {
			_, _ = fmt.Fprintf(out, "  %3d  %s\n", c.Index, c.Name)
		}
	}
}

// RenderGiven prints the authorizations an owner has written.
func RenderGiven(out io.Writer, records []models.AuthorizationRecord) {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(out, helpStyle.Render("You have not authorized anyone."))
		return
	}
	for _, r := range records {
		scope := "all credentials"
		if r.Type == models.AuthSingle {
			scope = fmt.Sprintf("credential %d", r.CredentialIndex)
		}
		_, _ = fmt.Fprintf(out, "  %s  %-16s %s\n", r.Viewer.Hex(), scope, helpStyle.Render(r.CreatedAt.Local().Format(timeLayout)))
	}
}

// RenderError prints a failure line.
func RenderError(out io.Writer, msg string) {
	_, _ = fmt.Fprintln(out, errorStyle.Render("error: ")+msg)
}
