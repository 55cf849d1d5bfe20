package canon

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Domain hashes computed by this package are always prefixed with this
// string, so a hash can never collide with a hash computed by an
// unrelated part of a system that happens to share the same SHA-256
// output space.
const hashDomain = "jsonrepair:v1:"

// cacheNamespace seeds the deterministic UUIDs handed out by CacheKey.
// It is a fixed, arbitrary v4 UUID: what matters is only that every
// process derives the same namespace, not where it came from.
var cacheNamespace = uuid.MustParse("2f3c6e0a-9d0a-4c9e-9e33-9a5f6e6b6a71")

// Canonicalize decodes repaired JSON text and re-encodes it
// deterministically: object keys sorted, no insignificant whitespace,
// no HTML escaping, and every string NFC-normalized. Two documents
// that are structurally equal but differ in key order or string
// normalization form canonicalize to the same bytes.
//
// Numbers are round-tripped through their original literal via
// json.Number rather than float64, so repaired documents containing
// integers wider than a float64's 53-bit mantissa still hash exactly.
func Canonicalize(repaired string) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(repaired)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("canon: decode: %w", err)
	}

	var buf bytes.Buffer
	if err := encodeCanonical(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeCanonical(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		buf.WriteString(val.String())
	case string:
		return encodeCanonicalString(buf, val)
	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeCanonical(buf, elem); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeCanonicalString(buf, k); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
			buf.WriteByte(':')
			if err := encodeCanonical(buf, val[k]); err != nil {
				return fmt.Errorf("value for key %q: %w", k, err)
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("canon: unsupported type %T", v)
	}
	return nil
}

func encodeCanonicalString(buf *bytes.Buffer, s string) error {
	normalized := norm.NFC.String(s)

	var enc bytes.Buffer
	e := json.NewEncoder(&enc)
	e.SetEscapeHTML(false)
	if err := e.Encode(normalized); err != nil {
		return err
	}

	out := enc.Bytes()
	if len(out) > 0 && out[len(out)-1] == '\n' {
		out = out[:len(out)-1]
	}
	buf.Write(out)
	return nil
}

// Hash returns the hex-encoded, domain-separated SHA-256 hash of
// canonical. Callers should pass the output of Canonicalize, not raw
// repaired text, so that formatting differences never affect identity.
func Hash(canonical []byte) string {
	h := sha256.New()
	h.Write([]byte(hashDomain))
	h.Write([]byte{0x00})
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil))
}

// CacheKey derives a deterministic v5 UUID from a content hash, giving
// internal/cache a stable, collision-resistant row identifier that
// never depends on wall-clock time or randomness.
func CacheKey(hash string) uuid.UUID {
	return uuid.NewSHA1(cacheNamespace, []byte(hash))
}

// IdentityOf is a convenience wrapper computing both the canonical hash
// and the cache key for a piece of repaired JSON in one call.
func IdentityOf(repaired string) (hash string, key uuid.UUID, err error) {
	canonical, err := Canonicalize(repaired)
	if err != nil {
		return "", uuid.Nil, err
	}
	hash = Hash(canonical)
	return hash, CacheKey(hash), nil
}
