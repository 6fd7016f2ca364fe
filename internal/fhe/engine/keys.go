package engine

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"gocloud.dev/secrets"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/models"
)

// MasterKeySize is the length of the gateway master key.
const MasterKeySize = 32

const (
	infoNetworkKey = "heirloom/gateway/network-key"
	infoDataKey    = "heirloom/gateway/data-key"
	infoProofKey   = "heirloom/gateway/proof-key"
)

// NewMasterKey returns a random master key.
func NewMasterKey() ([]byte, error) {
	key := make([]byte, MasterKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("read random master key: %w", err)
	}
	return key, nil
}

// WrapMasterKey encrypts master with the keeper at keeperURI and returns it
// base64 encoded, ready for ENGINE_WRAPPED_MASTER_KEY.
func WrapMasterKey(ctx context.Context, keeperURI string, master []byte) (string, error) {
	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	if err != nil {
		return "", fmt.Errorf("open keeper: %w", err)
	}
	defer keeper.Close()

	wrapped, err := keeper.Encrypt(ctx, master)
	if err != nil {
		return "", fmt.Errorf("wrap master key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(wrapped), nil
}

// UnwrapMasterKey reverses WrapMasterKey.
func UnwrapMasterKey(ctx context.Context, keeperURI, wrapped string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(wrapped)
	if err != nil {
		return nil, fmt.Errorf("decode wrapped master key: %w", err)
	}

	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	if err != nil {
		return nil, fmt.Errorf("open keeper: %w", err)
	}
	defer keeper.Close()

	master, err := keeper.Decrypt(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("unwrap master key: %w", err)
	}
	if len(master) != MasterKeySize {
		return nil, fmt.Errorf("%w: master key must be %d bytes", fhe.ErrInvalidKey, MasterKeySize)
	}
	return master, nil
}

// keyring holds everything derived from the master key.
type keyring struct {
	network models.Keypair
	data    cipher.AEAD
	proof   []byte
}

func deriveKeyring(master []byte) (*keyring, error) {
	if len(master) != MasterKeySize {
		return nil, fmt.Errorf("%w: master key must be %d bytes", fhe.ErrInvalidKey, MasterKeySize)
	}

	seed, err := derive(master, infoNetworkKey)
	if err != nil {
		return nil, err
	}
	network, err := fhe.KeypairFromSeed(seed)
	if err != nil {
		return nil, err
	}

	dataKey, err := derive(master, infoDataKey)
	if err != nil {
		return nil, err
	}
	data, err := chacha20poly1305.New(dataKey)
	if err != nil {
		return nil, fmt.Errorf("create data cipher: %w", err)
	}

	proof, err := derive(master, infoProofKey)
	if err != nil {
		return nil, err
	}

	return &keyring{network: network, data: data, proof: proof}, nil
}

func derive(master []byte, info string) ([]byte, error) {
	out := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(info)), out); err != nil {
		return nil, fmt.Errorf("derive %s: %w", info, err)
	}
	return out, nil
}
