// Package builtins registers the quick-start tool set: a handful of text
// transforms, encoders, and generators exercising the runtime end to end.
package builtins

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harun/toolbelt/pkg/hostcaps"
	"github.com/harun/toolbelt/pkg/registry"
	"github.com/harun/toolbelt/pkg/tool"
	"github.com/harun/toolbelt/pkg/validate"
)

// Options configures builtin tool registration.
type Options struct {
	// Provider overrides the capability provider. Defaults to the host's.
	Provider hostcaps.Provider
}

type builtin struct {
	def tool.Definition
	fn  tool.Handler
}

// Register registers the builtin tools on the given registry.
func Register(reg *registry.Registry, opts Options) error {
	if reg == nil {
		return errors.New("registry is required")
	}
	caps := opts.Provider
	if caps == nil {
		caps = hostcaps.Default()
	}

	tools := []builtin{
		textReverse(),
		textUppercase(),
		textLowercase(),
		base64Encoder(caps),
		base64Decoder(caps),
		hashDigest(caps),
		idGenerator(caps),
		uuidGenerator(),
		dateToUnix(),
	}

	for _, b := range tools {
		if err := reg.Register(b.def, b.fn); err != nil {
			return fmt.Errorf("failed to register tool %s: %w", b.def.ID, err)
		}
	}
	return nil
}

func output(v any) tool.Result {
	return tool.OK(map[string]any{"output": v})
}

func textReverse() builtin {
	return builtin{
		def: tool.Definition{
			ID:          "text-reverse",
			Name:        "Text Reverse",
			Description: "Reverse the characters of a string.",
			Category:    tool.CategoryText,
			Tags:        []string{"text", "transform"},
			Parameters: []tool.ParameterSchema{
				{Name: "text", Type: tool.FieldTextarea, Description: "Text to reverse", Required: true},
			},
			ReadOnly:          true,
			OutputDescription: "The input with its characters in reverse order.",
			Example: &tool.Example{
				Input:  map[string]string{"text": "hello"},
				Output: map[string]any{"success": true, "output": "olleh"},
			},
		},
		fn: func(ctx context.Context, p tool.Params) tool.Result {
			runes := []rune(p["text"])
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return output(string(runes))
		},
	}
}

func textUppercase() builtin {
	return builtin{
		def: tool.Definition{
			ID:          "text-uppercase",
			Name:        "Text Uppercase",
			Description: "Convert a string to upper case.",
			Category:    tool.CategoryText,
			Tags:        []string{"text", "transform"},
			Parameters: []tool.ParameterSchema{
				{Name: "text", Type: tool.FieldTextarea, Description: "Text to convert", Required: true},
			},
			ReadOnly:          true,
			OutputDescription: "The input in upper case.",
			Example: &tool.Example{
				Input:  map[string]string{"text": "hi"},
				Output: map[string]any{"success": true, "output": "HI"},
			},
		},
		fn: func(ctx context.Context, p tool.Params) tool.Result {
			return output(strings.ToUpper(p["text"]))
		},
	}
}

func textLowercase() builtin {
	return builtin{
		def: tool.Definition{
			ID:          "text-lowercase",
			Name:        "Text Lowercase",
			Description: "Convert a string to lower case.",
			Category:    tool.CategoryText,
			Tags:        []string{"text", "transform"},
			Parameters: []tool.ParameterSchema{
				{Name: "text", Type: tool.FieldTextarea, Description: "Text to convert", Required: true},
			},
			ReadOnly:          true,
			OutputDescription: "The input in lower case.",
			Example: &tool.Example{
				Input:  map[string]string{"text": "HI"},
				Output: map[string]any{"success": true, "output": "hi"},
			},
		},
		fn: func(ctx context.Context, p tool.Params) tool.Result {
			return output(strings.ToLower(p["text"]))
		},
	}
}

func base64Encoder(caps hostcaps.Provider) builtin {
	return builtin{
		def: tool.Definition{
			ID:          "base64-encoder",
			Name:        "Base64 Encoder",
			Description: "Encode text as base64.",
			Category:    tool.CategoryConverter,
			Tags:        []string{"encoding", "base64"},
			Parameters: []tool.ParameterSchema{
				{Name: "text", Type: tool.FieldTextarea, Description: "Text to encode", Required: true},
			},
			ReadOnly:          true,
			OutputDescription: "The base64 encoding of the input bytes.",
			Example: &tool.Example{
				Input:  map[string]string{"text": "hello"},
				Output: map[string]any{"success": true, "output": "aGVsbG8="},
			},
		},
		fn: func(ctx context.Context, p tool.Params) tool.Result {
			encoded, err := caps.EncodeBinaryText(hostcaps.Base64, []byte(p["text"]))
			if err != nil {
				return tool.Fail(tool.CodeExecutionError, "encode failed: %v", err)
			}
			return output(encoded)
		},
	}
}

func base64Decoder(caps hostcaps.Provider) builtin {
	return builtin{
		def: tool.Definition{
			ID:          "base64-decoder",
			Name:        "Base64 Decoder",
			Description: "Decode a base64 payload back to text.",
			Category:    tool.CategoryConverter,
			Tags:        []string{"encoding", "base64"},
			Parameters: []tool.ParameterSchema{
				{Name: "data", Type: tool.FieldFile, Description: "Base64 payload to decode", Required: true},
			},
			ReadOnly:          true,
			OutputDescription: "The decoded bytes interpreted as UTF-8 text.",
			Example: &tool.Example{
				Input:  map[string]string{"data": "aGVsbG8="},
				Output: map[string]any{"success": true, "output": "hello"},
			},
		},
		fn: func(ctx context.Context, p tool.Params) tool.Result {
			decoded, err := caps.DecodeBinaryText(hostcaps.Base64, p["data"])
			if err != nil {
				return tool.Fail(tool.CodeExecutionError, "decode failed: %v", err)
			}
			return output(string(decoded))
		},
	}
}

func hashDigest(caps hostcaps.Provider) builtin {
	algos := make([]string, 0, len(hostcaps.Algorithms()))
	for _, a := range hostcaps.Algorithms() {
		algos = append(algos, string(a))
	}
	encodings := make([]string, 0, len(hostcaps.Encodings()))
	for _, e := range hostcaps.Encodings() {
		encodings = append(encodings, string(e))
	}

	return builtin{
		def: tool.Definition{
			ID:          "hash-digest",
			Name:        "Hash Digest",
			Description: "Hash text with a chosen digest algorithm.",
			Category:    tool.CategoryCrypto,
			Tags:        []string{"crypto", "hash"},
			Parameters: []tool.ParameterSchema{
				{Name: "text", Type: tool.FieldTextarea, Description: "Text to hash", Required: true},
				{
					Name: "algorithm", Type: tool.FieldSelect, Description: "Digest algorithm",
					Default: string(hostcaps.SHA256), HasDefault: true,
					Constraints: tool.Constraints{Options: algos},
				},
				{
					Name: "encoding", Type: tool.FieldSelect, Description: "Output encoding",
					Default: string(hostcaps.Hex), HasDefault: true,
					Constraints: tool.Constraints{Options: encodings},
				},
			},
			ReadOnly:          true,
			OutputDescription: "The digest of the input, rendered in the chosen encoding.",
			Example: &tool.Example{
				Input: map[string]string{"text": "hello", "algorithm": "sha256", "encoding": "hex"},
				Output: map[string]any{
					"success": true,
					"output":  "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
				},
			},
		},
		fn: func(ctx context.Context, p tool.Params) tool.Result {
			digest, err := caps.Digest(hostcaps.Algorithm(p["algorithm"]), []byte(p["text"]))
			if err != nil {
				return tool.Fail(tool.CodeExecutionError, "digest failed: %v", err)
			}
			encoded, err := caps.EncodeBinaryText(hostcaps.Encoding(p["encoding"]), digest)
			if err != nil {
				return tool.Fail(tool.CodeExecutionError, "encode failed: %v", err)
			}
			return output(encoded)
		},
	}
}

func idGenerator(caps hostcaps.Provider) builtin {
	minLen, maxLen := 2.0, 128.0
	return builtin{
		def: tool.Definition{
			ID:          "id-generator",
			Name:        "ID Generator",
			Description: "Generate a URL-safe random identifier.",
			Category:    tool.CategoryGenerator,
			Tags:        []string{"generator", "random", "id"},
			Parameters: []tool.ParameterSchema{
				{
					Name: "length", Type: tool.FieldNumber, Description: "Identifier length",
					Default: "21", HasDefault: true,
					Constraints: tool.Constraints{Min: &minLen, Max: &maxLen},
				},
			},
			ReadOnly:          true,
			OutputDescription: "A random identifier of the requested length.",
			Example: &tool.Example{
				Input:  map[string]string{"length": "8"},
				Output: map[string]any{"success": true, "output": "V1StGXR8"},
			},
		},
		fn: func(ctx context.Context, p tool.Params) tool.Result {
			length, err := strconv.ParseFloat(p["length"], 64)
			if err != nil {
				return tool.Fail(tool.CodeExecutionError, "invalid length: %v", err)
			}
			id, err := caps.RandomID(int(length))
			if err != nil {
				return tool.Fail(tool.CodeExecutionError, "id generation failed: %v", err)
			}
			return output(id)
		},
	}
}

func uuidGenerator() builtin {
	return builtin{
		def: tool.Definition{
			ID:          "uuid-generator",
			Name:        "UUID Generator",
			Description: "Generate a random version 4 UUID.",
			Category:    tool.CategoryGenerator,
			Tags:        []string{"generator", "random", "uuid"},
			Parameters: []tool.ParameterSchema{
				{
					Name: "uppercase", Type: tool.FieldBoolean, Description: "Render in upper case",
					Default: "false", HasDefault: true,
				},
			},
			ReadOnly:          true,
			OutputDescription: "A freshly generated UUIDv4.",
			Example: &tool.Example{
				Input:  map[string]string{"uppercase": "false"},
				Output: map[string]any{"success": true, "output": "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"},
			},
		},
		fn: func(ctx context.Context, p tool.Params) tool.Result {
			id := uuid.NewString()
			if upper, _ := validate.ParseBool(p["uppercase"]); upper {
				id = strings.ToUpper(id)
			}
			return output(id)
		},
	}
}

func dateToUnix() builtin {
	return builtin{
		def: tool.Definition{
			ID:          "date-to-unix",
			Name:        "Date to Unix",
			Description: "Convert a calendar date to a Unix timestamp at midnight UTC.",
			Category:    tool.CategoryConverter,
			Tags:        []string{"date", "convert"},
			Parameters: []tool.ParameterSchema{
				{Name: "date", Type: tool.FieldDate, Description: "Date in YYYY-MM-DD form", Required: true},
			},
			ReadOnly:          true,
			OutputDescription: "Seconds since the Unix epoch.",
			Example: &tool.Example{
				Input:  map[string]string{"date": "1970-01-02"},
				Output: map[string]any{"success": true, "output": int64(86400)},
			},
		},
		fn: func(ctx context.Context, p tool.Params) tool.Result {
			t, err := time.Parse("2006-01-02", p["date"])
			if err != nil {
				return tool.Fail(tool.CodeExecutionError, "invalid date: %v", err)
			}
			return output(t.Unix())
		},
	}
}
