// Package cryptox derives and verifies password digests.
//
// Digests are Argon2id keys encoded in PHC string form:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// salt and key are unpadded standard base64. The parameters travel with the
// digest, so stored records stay verifiable if the defaults change later.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fundraise/internal/common"
	"golang.org/x/crypto/argon2"
)

// ErrInvalidHash is returned when a stored digest cannot be decoded.
var ErrInvalidHash = errors.New("invalid password hash")

// Params are the Argon2id cost parameters.
type Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

// DefaultParams match the key derivation used by the vault client this code
// grew out of: one pass over 64 MiB with four lanes.
var DefaultParams = Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32}

// DeriveKey runs Argon2id over password and salt.
func DeriveKey(password, salt []byte, p Params) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

// HashPassword returns a salted PHC digest of password using DefaultParams.
func HashPassword(password []byte) (string, error) {
	return HashPasswordWith(password, DefaultParams)
}

// HashPasswordWith is HashPassword with explicit parameters.
func HashPasswordWith(password []byte, p Params) (string, error) {
	if p.Time == 0 || p.Memory == 0 || p.Threads == 0 || p.KeyLen == 0 {
		return "", fmt.Errorf("argon2 params must be positive: %+v", p)
	}
	salt := common.GenerateRandByteArray(common.SaltSize)
	key := DeriveKey(password, salt, p)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword reports whether password matches the encoded digest.
// A malformed digest yields ErrInvalidHash.
func VerifyPassword(password []byte, encoded string) (bool, error) {
	p, salt, key, err := decode(encoded)
	if err != nil {
		return false, err
	}
	candidate := DeriveKey(password, salt, p)
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decode(encoded string) (Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	if len(parts) != 6 || parts[1] != "argon2id" {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	if p.Memory == 0 || p.Time == 0 || p.Threads == 0 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Params{}, nil, nil, ErrInvalidHash
	}
	p.KeyLen = uint32(len(key))

	return p, salt, key, nil
}
