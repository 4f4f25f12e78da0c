// Package hostcaps abstracts the primitives whose native implementations
// differ between a server host and a browser (wasm) host: hashing,
// binary-to-text encoding, and random-id generation. A tool body written
// against Provider runs under either host unchanged.
//
// The concrete provider is chosen once at startup by a build-tag probe, not
// by per-call environment checks.
package hostcaps

import (
	"errors"
	"sync"
)

// Algorithm names a digest algorithm.
type Algorithm string

const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

// Algorithms returns the supported digest algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, SHA512}
}

// Encoding names a binary-to-text encoding.
type Encoding string

const (
	Base64    Encoding = "base64"
	Base64URL Encoding = "base64url"
	Base32    Encoding = "base32"
	Hex       Encoding = "hex"
)

// Encodings returns the supported binary-to-text encodings.
func Encodings() []Encoding {
	return []Encoding{Base64, Base64URL, Base32, Hex}
}

// ErrUnsupported is returned for an algorithm or encoding outside the
// supported set.
var ErrUnsupported = errors.New("unsupported primitive")

// Provider is the capability surface a host environment supplies.
type Provider interface {
	// Name identifies the executing environment, e.g. "server" or "browser".
	Name() string
	// Digest hashes data with the named algorithm.
	Digest(algo Algorithm, data []byte) ([]byte, error)
	// EncodeBinaryText renders binary data in the named text encoding.
	EncodeBinaryText(enc Encoding, data []byte) (string, error)
	// DecodeBinaryText reverses EncodeBinaryText.
	DecodeBinaryText(enc Encoding, s string) ([]byte, error)
	// RandomID generates a URL-safe random identifier of the given length.
	RandomID(length int) (string, error)
}

var (
	defaultProvider Provider
	defaultOnce     sync.Once
)

// Default returns the provider for the current host, probing once.
func Default() Provider {
	defaultOnce.Do(func() {
		defaultProvider = detect()
	})
	return defaultProvider
}
