package fhe

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"

	"github.com/SaurabViena/heirloom/models"
)

const sealInfo = "heirloom/sealbox/v1"

// sealOverhead is ephemeral public key + XChaCha20 nonce + Poly1305 tag.
const sealOverhead = curve25519.PointSize + chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead

// GenerateKeypair returns a fresh X25519 keypair.
func GenerateKeypair() (models.Keypair, error) {
	seed := make([]byte, curve25519.ScalarSize)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return models.Keypair{}, fmt.Errorf("read random seed: %w", err)
	}
	return KeypairFromSeed(seed)
}

// KeypairFromSeed derives the X25519 keypair whose private scalar is seed.
func KeypairFromSeed(seed []byte) (models.Keypair, error) {
	if len(seed) != curve25519.ScalarSize {
		return models.Keypair{}, fmt.Errorf("%w: seed must be %d bytes", ErrInvalidKey, curve25519.ScalarSize)
	}
	pub, err := curve25519.X25519(seed, curve25519.Basepoint)
	if err != nil {
		return models.Keypair{}, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	priv := make([]byte, len(seed))
	copy(priv, seed)
	return models.Keypair{PublicKey: pub, PrivateKey: priv}, nil
}

// Seal encrypts plaintext so that only the holder of recipient's private key
// can read it. Output layout: ephemeral public key || nonce || ciphertext.
func Seal(recipient, plaintext, aad []byte) ([]byte, error) {
	eph, err := GenerateKeypair()
	if err != nil {
		return nil, err
	}
	aead, err := boxCipher(eph.PrivateKey, recipient, eph.PublicKey, recipient)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, sealOverhead+len(plaintext))
	out = append(out, eph.PublicKey...)
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, aad), nil
}

// Open decrypts a box produced by Seal for kp's public key.
func Open(kp models.Keypair, box, aad []byte) ([]byte, error) {
	if len(box) < sealOverhead {
		return nil, fmt.Errorf("%w: box too short", ErrSealedBox)
	}
	ephPub := box[:curve25519.PointSize]
	nonce := box[curve25519.PointSize : curve25519.PointSize+chacha20poly1305.NonceSizeX]
	ciphertext := box[curve25519.PointSize+chacha20poly1305.NonceSizeX:]

	aead, err := boxCipher(kp.PrivateKey, ephPub, ephPub, kp.PublicKey)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSealedBox, err)
	}
	return plaintext, nil
}

// boxCipher derives the AEAD shared by (ephPub, recipientPub) from one side's
// private scalar and the other side's public point.
func boxCipher(priv, peer, ephPub, recipientPub []byte) (cipher.AEAD, error) {
	shared, err := curve25519.X25519(priv, peer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	salt := make([]byte, 0, len(ephPub)+len(recipientPub))
	salt = append(salt, ephPub...)
	salt = append(salt, recipientPub...)

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, shared, salt, []byte(sealInfo)), key); err != nil {
		return nil, fmt.Errorf("derive box key: %w", err)
	}
	return chacha20poly1305.NewX(key)
}
