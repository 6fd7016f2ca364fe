package service

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/models"
)

// EffectiveAccess resolves what viewer may read of owner's credentials.
// A single All record dominates; otherwise the Single indices are unioned.
// Records for other pairs are ignored.
func EffectiveAccess(records []models.AuthorizationRecord, owner, viewer common.Address) models.AccessScope {
	var indices []uint64
	for _, rec := range records {
		if rec.Owner != owner || rec.Viewer != viewer {
			continue
		}
		switch rec.Type {
		case models.AuthAll:
			return models.FullAccess()
		case models.AuthSingle:
			indices = append(indices, rec.CredentialIndex)
		}
	}
	return models.IndexAccess(indices...)
}

// InheritedCredentials is what one owner has shared with a viewer.
type InheritedCredentials struct {
	Owner       common.Address          `json:"owner"`
	Scope       models.AccessScope      `json:"-"`
	Credentials []models.CredentialMeta `json:"credentials"`
}

type accessService struct {
	ledger Ledger
	logger *logger.Logger
}

// NewAccessService returns the read side of the authorization model.
func NewAccessService(ledger Ledger, log *logger.Logger) AccessService {
	return &accessService{ledger: ledger, logger: log}
}

// Received groups the viewer's received records by owner, in the order the
// owners first appear, and lists the credentials each scope covers.
func (s *accessService) Received(ctx context.Context, viewer common.Address) ([]InheritedCredentials, error) {
	records, err := s.ledger.ReceivedAuthorizations(ctx, viewer)
	if err != nil {
		return nil, err
	}

	var owners []common.Address
	seen := make(map[common.Address]struct{})
	for _, rec := range records {
		if _, ok := seen[rec.Owner]; ok {
			continue
		}
		seen[rec.Owner] = struct{}{}
		owners = append(owners, rec.Owner)
	}

	out := make([]InheritedCredentials, 0, len(owners))
	for _, owner := range owners {
		scope := EffectiveAccess(records, owner, viewer)
		creds, err := s.visible(ctx, owner, scope)
		if err != nil {
			return nil, err
		}
		out = append(out, InheritedCredentials{Owner: owner, Scope: scope, Credentials: creds})
	}
	return out, nil
}

func (s *accessService) visible(ctx context.Context, owner common.Address, scope models.AccessScope) ([]models.CredentialMeta, error) {
	switch scope.Kind {
	case models.AccessAll:
		names, err := s.ledger.CredentialNames(ctx, owner)
		if err != nil {
			return nil, err
		}
		creds := make([]models.CredentialMeta, len(names))
		for i, name := range names {
			creds[i] = models.CredentialMeta{Owner: owner, Index: uint64(i), Name: name}
		}
		return creds, nil

	case models.AccessIndices:
		creds := make([]models.CredentialMeta, 0, len(scope.Indices))
		for _, idx := range scope.Indices {
			meta, err := s.ledger.CredentialMeta(ctx, owner, idx)
			if errors.Is(err, ErrCredentialNotFound) {
				logger.FromContext(ctx).Warn().Str("func", "accessService.visible").
					Str("owner", owner.Hex()).Uint64("index", idx).
					Msg("authorization points at a missing credential")
				continue
			}
			if err != nil {
				return nil, err
			}
			creds = append(creds, meta)
		}
		return creds, nil

	default:
		return nil, nil
	}
}

func (s *accessService) Given(ctx context.Context, owner common.Address) ([]models.AuthorizationRecord, error) {
	return s.ledger.GivenAuthorizations(ctx, owner)
}
