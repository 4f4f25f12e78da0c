//go:build js && wasm

package hostcaps

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"syscall/js"
)

func detect() Provider {
	return &browserProvider{}
}

// browserProvider leans on the host's Web Crypto API for digests and random
// bytes. Encodings without a browser primitive fall back to the Go encoders,
// which compile fine under wasm. MD5 is unsupported: crypto.subtle does not
// implement it.
type browserProvider struct{}

func (*browserProvider) Name() string { return "browser" }

var subtleNames = map[Algorithm]string{
	SHA1:   "SHA-1",
	SHA256: "SHA-256",
	SHA512: "SHA-512",
}

func (*browserProvider) Digest(algo Algorithm, data []byte) ([]byte, error) {
	name, ok := subtleNames[algo]
	if !ok {
		return nil, fmt.Errorf("%w: digest %q", ErrUnsupported, algo)
	}

	buf := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(buf, data)

	promise := js.Global().Get("crypto").Get("subtle").Call("digest", name, buf)
	result, err := await(promise)
	if err != nil {
		return nil, fmt.Errorf("crypto.subtle.digest: %w", err)
	}

	view := js.Global().Get("Uint8Array").New(result)
	out := make([]byte, view.Get("length").Int())
	js.CopyBytesToGo(out, view)
	return out, nil
}

func (*browserProvider) EncodeBinaryText(enc Encoding, data []byte) (string, error) {
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

func (*browserProvider) DecodeBinaryText(enc Encoding, s string) ([]byte, error) {
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

// idAlphabet is the 64-symbol nanoid alphabet; its power-of-two size lets a
// random byte index it with a mask instead of rejection sampling.
const idAlphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"

func (*browserProvider) RandomID(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("random id length must be positive, got %d", length)
	}

	buf := js.Global().Get("Uint8Array").New(length)
	js.Global().Get("crypto").Call("getRandomValues", buf)
	raw := make([]byte, length)
	js.CopyBytesToGo(raw, buf)

	id := make([]byte, length)
	for i, b := range raw {
		id[i] = idAlphabet[int(b)&(len(idAlphabet)-1)]
	}
	return string(id), nil
}

// await blocks until the promise settles.
func await(promise js.Value) (js.Value, error) {
	done := make(chan struct{})
	var (
		result js.Value
		err    error
	)

	then := js.FuncOf(func(this js.Value, args []js.Value) any {
		result = args[0]
		close(done)
		return nil
	})
	defer then.Release()

	catch := js.FuncOf(func(this js.Value, args []js.Value) any {
		err = js.Error{Value: args[0]}
		close(done)
		return nil
	})
	defer catch.Release()

	promise.Call("then", then).Call("catch", catch)
	<-done
	return result, err
}
