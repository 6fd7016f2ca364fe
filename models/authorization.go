package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AuthType is the ledger's numeric authorization kind.
type AuthType uint8

const (
	AuthNone AuthType = iota
	AuthSingle
	AuthAll
)

func (t AuthType) String() string {
	switch t {
	case AuthSingle:
		return "single"
	case AuthAll:
		return "all"
	default:
		return "none"
	}
}

// AuthorizationRecord is one grant written by an owner for a viewer.
// CredentialIndex is meaningful only for AuthSingle.
type AuthorizationRecord struct {
	Owner           common.Address `json:"owner"`
	Viewer          common.Address `json:"authorized"`
	Type            AuthType       `json:"auth_type"`
	CredentialIndex uint64         `json:"credential_index"`
	CreatedAt       time.Time      `json:"created_at"`
}

// AccessKind is the resolved level of read access.
type AccessKind int

const (
	AccessNone AccessKind = iota
	AccessAll
	AccessIndices
)

// AccessScope is what a viewer may read of an owner's credentials.
// Indices is sorted and only set for AccessIndices.
type AccessScope struct {
	Kind    AccessKind
	Indices []uint64
}

// NoAccess returns the None scope.
func NoAccess() AccessScope { return AccessScope{Kind: AccessNone} }

// FullAccess returns the All scope.
func FullAccess() AccessScope { return AccessScope{Kind: AccessAll} }

// IndexAccess returns an Indices scope over the given indices, deduplicated
// and sorted. With no indices it is equivalent to NoAccess.
func IndexAccess(indices ...uint64) AccessScope {
	if len(indices) == 0 {
		return NoAccess()
	}
	set := slices.Clone(indices)
	slices.Sort(set)
	return AccessScope{Kind: AccessIndices, Indices: slices.Compact(set)}
}

// Allows reports whether the scope covers credential index.
func (s AccessScope) Allows(index uint64) bool {
	switch s.Kind {
	case AccessAll:
		return true
	case AccessIndices:
		_, found := slices.BinarySearch(s.Indices, index)
		return found
	default:
		return false
	}
}

func (s AccessScope) String() string {
	switch s.Kind {
	case AccessAll:
		return "all"
	case AccessIndices:
		parts := make([]string, len(s.Indices))
		for i, idx := range s.Indices {
			parts[i] = fmt.Sprint(idx)
		}
		return "indices(" + strings.Join(parts, ",") + ")"
	default:
		return "none"
	}
}
