package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AttributeID names one confidential credential attribute.
type AttributeID string

const (
	AttributeAccount  AttributeID = "account"
	AttributePassword AttributeID = "password"
	AttributeExtra    AttributeID = "extra"
)

// NameMaxLength is the maximum length of a credential's public name, in characters.
const NameMaxLength = 64

// AttributeSpec is the capacity contract of one confidential attribute.
type AttributeSpec struct {
	ID       AttributeID
	MaxBytes int
	Elements int
}

// CredentialLayout is the ordered list of confidential attributes. The
// flattened element order it defines is what the ledger stores, so it must
// never change for deployed credentials.
type CredentialLayout []AttributeSpec

// DefaultLayout stores account and password in one 31-byte element each and
// extra notes in two 32-byte elements: [account, password, extra1, extra2].
var DefaultLayout = CredentialLayout{
	{ID: AttributeAccount, MaxBytes: 31, Elements: 1},
	{ID: AttributePassword, MaxBytes: 31, Elements: 1},
	{ID: AttributeExtra, MaxBytes: 64, Elements: 2},
}

// ElementCount returns the total number of field elements (and handles) a
// credential occupies.
func (l CredentialLayout) ElementCount() int {
	n := 0
	for _, spec := range l {
		n += spec.Elements
	}
	return n
}

// Bind pairs a flat handle list with the attribute each handle belongs to.
// Handles beyond the layout are ignored and missing ones are treated as empty.
func (l CredentialLayout) Bind(handles []Handle) []HandleRef {
	refs := make([]HandleRef, 0, l.ElementCount())
	i := 0
	for _, spec := range l {
		for range spec.Elements {
			var h Handle
			if i < len(handles) {
				h = handles[i]
			}
			refs = append(refs, HandleRef{Handle: h, Attribute: spec.ID})
			i++
		}
	}
	return refs
}

// CredentialDraft is the plaintext credential as typed by the user. It lives
// only in memory and is consumed by the submission pipeline.
type CredentialDraft struct {
	Name     string
	Account  string
	Password string
	Extra    string
}

// Value returns the plaintext of the given attribute.
func (d CredentialDraft) Value(id AttributeID) string {
	switch id {
	case AttributeAccount:
		return d.Account
	case AttributePassword:
		return d.Password
	case AttributeExtra:
		return d.Extra
	default:
		return ""
	}
}

// SubmissionRequest is everything the ledger's "create credential" write
// needs: the public name, the ordered handles and the proof.
type SubmissionRequest struct {
	Name        string         `json:"name"`
	Handles     []Handle       `json:"handles"`
	Proof       Proof          `json:"proof"`
	Destination common.Address `json:"destination"`
	Submitter   common.Address `json:"submitter"`
}

// CredentialMeta is the public part of a stored credential.
type CredentialMeta struct {
	Owner     common.Address `json:"owner"`
	Index     uint64         `json:"index"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
}

// HandleRef is one handle tagged with the attribute it encodes.
type HandleRef struct {
	Handle    Handle
	Attribute AttributeID
}

// Revealed maps attribute ids to their decrypted text.
type Revealed map[AttributeID]string
