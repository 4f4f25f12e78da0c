//go:build !js

package hostcaps

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

func detect() Provider {
	return &nativeProvider{}
}

// nativeProvider backs the capability surface with the Go standard crypto
// and encoding packages. Used on every host except js/wasm.
type nativeProvider struct{}

func (*nativeProvider) Name() string { return "server" }

func (*nativeProvider) Digest(algo Algorithm, data []byte) ([]byte, error) {
	var h hash.Hash
	switch algo {
	case MD5:
		h = md5.New()
	case SHA1:
		h = sha1.New()
	case SHA256:
		h = sha256.New()
	case SHA512:
		h = sha512.New()
	default:
		return nil, fmt.Errorf("%w: digest %q", ErrUnsupported, algo)
	}
	h.Write(data)
	return h.Sum(nil), nil
}

func (*nativeProvider) EncodeBinaryText(enc Encoding, data []byte) (string, error) {
	switch enc {
	case Base64:
		return base64.StdEncoding.EncodeToString(data), nil
	case Base64URL:
		return base64.URLEncoding.EncodeToString(data), nil
	case Base32:
		return base32.StdEncoding.EncodeToString(data), nil
	case Hex:
		return hex.EncodeToString(data), nil
	default:
		return "", fmt.Errorf("%w: encoding %q", ErrUnsupported, enc)
	}
}

func (*nativeProvider) DecodeBinaryText(enc Encoding, s string) ([]byte, error) {
	switch enc {
	case Base64:
		return base64.StdEncoding.DecodeString(s)
	case Base64URL:
		return base64.URLEncoding.DecodeString(s)
	case Base32:
		return base32.StdEncoding.DecodeString(s)
	case Hex:
		return hex.DecodeString(s)
	default:
		return nil, fmt.Errorf("%w: encoding %q", ErrUnsupported, enc)
	}
}

func (*nativeProvider) RandomID(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("random id length must be positive, got %d", length)
	}
	return gonanoid.New(length)
}
