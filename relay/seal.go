package relay

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	sealKeySize = 32
	sealTagSize = 16

	// sealKeyPrefix marks a base64 key, as in a Laravel APP_KEY.
	sealKeyPrefix = "base64:"

	// SealedContentType is the Content-Type of sealed deliveries.
	SealedContentType = "text/plain; charset=utf-8"
)

// sealedPayload is the AES-256-GCM envelope of a sealed body. The layout is
// Laravel's encrypter payload, so a PHP receiver can open it with
// Crypt::decryptString.
type sealedPayload struct {
	IV    string `json:"iv"`
	Value string `json:"value"`
	MAC   string `json:"mac"`
	Tag   string `json:"tag"`
}

// GenerateSealKey returns a random AES-256 key in "base64:..." form for the
// seal_key setting of a route.
func GenerateSealKey() (string, error) {
	key := make([]byte, sealKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("relay: generating seal key: %w", err)
	}
	return sealKeyPrefix + base64.StdEncoding.EncodeToString(key), nil
}

// decodeSealKey accepts "base64:<key>" or bare standard base64.
func decodeSealKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(encoded, sealKeyPrefix))
	if err != nil {
		return nil, fmt.Errorf("%w: seal_key is not base64", ErrInvalidSealKey)
	}
	if len(key) != sealKeySize {
		return nil, fmt.Errorf("%w: seal_key must be %d bytes, got %d", ErrInvalidSealKey, sealKeySize, len(key))
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("relay: creating AES cipher: %w", err)
	}
	return cipher.NewGCMWithTagSize(block, sealTagSize)
}

// Seal encrypts body with AES-256-GCM under the encoded key and returns the
// base64 JSON envelope. The tag is stored in "tag" and "mac" stays empty.
func Seal(body []byte, encodedKey string) ([]byte, error) {
	key, err := decodeSealKey(encodedKey)
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("relay: generating nonce: %w", err)
	}
	sealed := gcm.Seal(nil, nonce, body, nil)
	split := len(sealed) - sealTagSize

	data, err := json.Marshal(sealedPayload{
		IV:    base64.StdEncoding.EncodeToString(nonce),
		Value: base64.StdEncoding.EncodeToString(sealed[:split]),
		Tag:   base64.StdEncoding.EncodeToString(sealed[split:]),
	})
	if err != nil {
		return nil, err
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(data)))
	base64.StdEncoding.Encode(out, data)
	return out, nil
}

// Open reverses [Seal]. Any malformed envelope, wrong key or tampered
// ciphertext returns [ErrSealBroken].
func Open(sealed []byte, encodedKey string) ([]byte, error) {
	key, err := decodeSealKey(encodedKey)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(sealed)))
	if err != nil {
		return nil, ErrSealBroken
	}
	var p sealedPayload
	if err := json.Unmarshal(data, &p); err != nil || p.IV == "" || p.Tag == "" {
		return nil, ErrSealBroken
	}
	nonce, errIV := base64.StdEncoding.DecodeString(p.IV)
	ciphertext, errValue := base64.StdEncoding.DecodeString(p.Value)
	tag, errTag := base64.StdEncoding.DecodeString(p.Tag)
	if errIV != nil || errValue != nil || errTag != nil || len(tag) != sealTagSize {
		return nil, ErrSealBroken
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrSealBroken
	}
	plaintext, err := gcm.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return nil, ErrSealBroken
	}
	return plaintext, nil
}
