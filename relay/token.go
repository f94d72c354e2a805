package relay

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// TokenDriver identifies the algorithm a route token hash was made with.
type TokenDriver string

const (
	// TokenBcrypt hashes tokens with bcrypt ("$2a$", "$2b$" or "$2y$").
	TokenBcrypt TokenDriver = "bcrypt"
	// TokenArgon2id hashes tokens with Argon2id in PHC string format.
	TokenArgon2id TokenDriver = "argon2id"
)

const (
	tokenBcryptCost = bcrypt.DefaultCost

	tokenArgon2Memory  uint32 = 64 * 1024
	tokenArgon2Time    uint32 = 3
	tokenArgon2Threads uint8  = 2
	tokenArgon2KeyLen  uint32 = 32
	tokenArgon2SaltLen        = 16
)

// DetectTokenDriver inspects the prefix of hash. The second result is false
// when the format is not recognised.
func DetectTokenDriver(hash string) (TokenDriver, bool) {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		return TokenArgon2id, true
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2y$"):
		return TokenBcrypt, true
	}
	return "", false
}

// HashToken hashes a route token for the token_hash setting of a route.
func HashToken(token string, driver TokenDriver) (string, error) {
	switch driver {
	case TokenBcrypt:
		hash, err := bcrypt.GenerateFromPassword([]byte(token), tokenBcryptCost)
		if err != nil {
			return "", fmt.Errorf("relay: bcrypt: %w", err)
		}
		return string(hash), nil
	case TokenArgon2id:
		salt := make([]byte, tokenArgon2SaltLen)
		if _, err := rand.Read(salt); err != nil {
			return "", fmt.Errorf("relay: argon2id: generating salt: %w", err)
		}
		key := argon2.IDKey([]byte(token), salt, tokenArgon2Time, tokenArgon2Memory, tokenArgon2Threads, tokenArgon2KeyLen)
		return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
			argon2.Version, tokenArgon2Memory, tokenArgon2Time, tokenArgon2Threads,
			base64.RawStdEncoding.EncodeToString(salt),
			base64.RawStdEncoding.EncodeToString(key),
		), nil
	}
	return "", fmt.Errorf("%w: unknown token driver %q", ErrInvalidConfig, driver)
}

// CheckToken reports whether token matches hash. A mismatch returns
// (false, nil); a malformed hash returns [ErrInvalidHash]. Comparison runs in
// constant time.
func CheckToken(token, hash string) (bool, error) {
	driver, ok := DetectTokenDriver(hash)
	if !ok {
		return false, ErrInvalidHash
	}
	if driver == TokenBcrypt {
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
		}
		return true, nil
	}

	p, err := decodeArgon2id(hash)
	if err != nil {
		return false, err
	}
	computed := argon2.IDKey([]byte(token), p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))
	return subtle.ConstantTimeCompare(computed, p.key) == 1, nil
}

type argon2idParams struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

// decodeArgon2id parses "$argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>".
func decodeArgon2id(encoded string) (*argon2idParams, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != string(TokenArgon2id) {
		return nil, fmt.Errorf("%w: expected 5-segment argon2id string", ErrInvalidHash)
	}
	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return nil, fmt.Errorf("%w: unsupported argon2 version %q", ErrInvalidHash, parts[2])
	}

	params := make(map[string]uint64, 3)
	for _, kv := range strings.Split(parts[3], ",") {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("%w: malformed parameter %q", ErrInvalidHash, kv)
		}
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %q: %v", ErrInvalidHash, kv, err)
		}
		params[name] = n
	}
	m, okM := params["m"]
	t, okT := params["t"]
	p, okP := params["p"]
	if !okM || !okT || !okP || t < 1 || p < 1 || p > 255 {
		return nil, fmt.Errorf("%w: bad parameter segment %q", ErrInvalidHash, parts[3])
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) < 4 {
		return nil, fmt.Errorf("%w: key: %v", ErrInvalidHash, err)
	}
	return &argon2idParams{
		memory:  uint32(m),
		time:    uint32(t),
		threads: uint8(p),
		salt:    salt,
		key:     key,
	}, nil
}
