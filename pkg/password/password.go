// Package password implements the salted keyed-hash scheme used for
// stored credentials: a fresh random HMAC-SHA512 key is generated per
// password and kept as the salt, the hash is HMAC-SHA512(salt, password).
package password

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"errors"
)

// Salt length matches the HMAC-SHA512 block size, the natural key
// length for the MAC.
const saltLen = sha512.BlockSize

// Hash produces the keyed hash of password under a freshly generated salt.
func Hash(password string) (hash, salt []byte, err error) {
	salt = make([]byte, saltLen)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, errors.New("generating salt error: " + err.Error())
	}
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil), salt, nil
}

// Verify recomputes the keyed hash with the stored salt and compares it
// to the stored hash in constant time.
func Verify(password string, hash, salt []byte) bool {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return hmac.Equal(mac.Sum(nil), hash)
}
