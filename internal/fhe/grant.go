package fhe

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/SaurabViena/heirloom/models"
)

// GrantPrimaryType is the EIP-712 primary type of a user decryption request.
const GrantPrimaryType = "UserDecryptRequestVerification"

const (
	grantDomainName    = "Decryption"
	grantDomainVersion = "1"
)

// ErrInvalidGrant reports arguments that cannot form a grant.
var ErrInvalidGrant = errors.New("invalid grant parameters")

var grantTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	GrantPrimaryType: {
		{Name: "publicKey", Type: "bytes"},
		{Name: "contractAddresses", Type: "address[]"},
		{Name: "startTimestamp", Type: "uint256"},
		{Name: "durationSeconds", Type: "uint256"},
	},
}

// GrantDomain fixes the EIP-712 domain grants are signed under: the chain
// and the gateway contract that verifies them.
type GrantDomain struct {
	ChainID  int64
	Verifier common.Address
}

// Build returns the unsigned grant for the given parameters. IssuedAt and
// Duration are truncated to whole seconds, the precision of the signed
// payload, so that both sides rebuild identical typed data.
func (d GrantDomain) Build(publicKey []byte, destinations []common.Address, issuedAt time.Time, duration time.Duration) (models.UnsignedGrant, error) {
	if len(publicKey) == 0 {
		return models.UnsignedGrant{}, fmt.Errorf("%w: empty public key", ErrInvalidGrant)
	}
	if len(destinations) == 0 {
		return models.UnsignedGrant{}, fmt.Errorf("%w: no destinations", ErrInvalidGrant)
	}
	seconds := int64(duration / time.Second)
	if seconds <= 0 {
		return models.UnsignedGrant{}, fmt.Errorf("%w: duration %s", ErrInvalidGrant, duration)
	}
	start := issuedAt.Unix()

	contracts := make([]interface{}, len(destinations))
	for i, dst := range destinations {
		contracts[i] = dst.Hex()
	}

	typed := apitypes.TypedData{
		Types:       grantTypes,
		PrimaryType: GrantPrimaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              grantDomainName,
			Version:           grantDomainVersion,
			ChainId:           (*math.HexOrDecimal256)(big.NewInt(d.ChainID)),
			VerifyingContract: d.Verifier.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"publicKey":         hexutil.Encode(publicKey),
			"contractAddresses": contracts,
			"startTimestamp":    strconv.FormatInt(start, 10),
			"durationSeconds":   strconv.FormatInt(seconds, 10),
		},
	}

	return models.UnsignedGrant{
		PublicKey:    append([]byte(nil), publicKey...),
		Destinations: append([]common.Address(nil), destinations...),
		IssuedAt:     time.Unix(start, 0),
		Duration:     time.Duration(seconds) * time.Second,
		TypedData:    typed,
	}, nil
}

// GrantDigest returns the EIP-712 hash a signer signs for typed.
func GrantDigest(typed apitypes.TypedData) ([]byte, error) {
	digest, _, err := apitypes.TypedDataAndHash(typed)
	if err != nil {
		return nil, fmt.Errorf("hash typed data: %w", err)
	}
	return digest, nil
}

// RecoverGrantSigner returns the address that produced sig over typed.
// Both the raw (0/1) and the wallet (27/28) recovery id forms are accepted.
func RecoverGrantSigner(typed apitypes.TypedData, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: signature must be %d bytes", ErrGrantRejected, crypto.SignatureLength)
	}
	digest, err := GrantDigest(typed)
	if err != nil {
		return common.Address{}, err
	}

	normalized := append([]byte(nil), sig...)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(digest, normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrGrantRejected, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
