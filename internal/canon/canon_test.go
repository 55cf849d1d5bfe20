package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeKeyOrderingIsDeterministic(t *testing.T) {
	a, err := Canonicalize(`{"zebra":1,"alpha":2}`)
	require.NoError(t, err)

	b, err := Canonicalize(`{"alpha":2,"zebra":1}`)
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
	assert.Equal(t, `{"alpha":2,"zebra":1}`, string(a))
}

func TestCanonicalizeStripsInsignificantWhitespace(t *testing.T) {
	compact, err := Canonicalize(`{"a":1,"b":[1,2,3]}`)
	require.NoError(t, err)

	spaced, err := Canonicalize("{\n  \"a\": 1,\n  \"b\": [1, 2, 3]\n}")
	require.NoError(t, err)

	assert.Equal(t, string(compact), string(spaced))
}

func TestCanonicalizePreservesWideIntegerLiterals(t *testing.T) {
	// 2^63-1 overflows float64's 53-bit mantissa; a naive float64 round trip
	// would silently change the digits.
	out, err := Canonicalize(`{"n":9223372036854775807}`)
	require.NoError(t, err)
	assert.Equal(t, `{"n":9223372036854775807}`, string(out))
}

func TestCanonicalizeRejectsInvalidJSON(t *testing.T) {
	_, err := Canonicalize(`{not valid`)
	assert.Error(t, err)
}

func TestHashIsDeterministicAndDomainSeparated(t *testing.T) {
	canonical, err := Canonicalize(`{"a":1}`)
	require.NoError(t, err)

	h1 := Hash(canonical)
	h2 := Hash(canonical)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)

	other, err := Canonicalize(`{"a":2}`)
	require.NoError(t, err)
	assert.NotEqual(t, h1, Hash(other))
}

func TestCacheKeyIsStableForEqualHash(t *testing.T) {
	k1 := CacheKey("deadbeef")
	k2 := CacheKey("deadbeef")
	assert.Equal(t, k1, k2)

	k3 := CacheKey("cafef00d")
	assert.NotEqual(t, k1, k3)
}

func TestIdentityOfRoundTrip(t *testing.T) {
	hash, key, err := IdentityOf(`{"a": 1, "b": 2}`)
	require.NoError(t, err)
	assert.Len(t, hash, 64)
	assert.NotEqual(t, key.String(), "00000000-0000-0000-0000-000000000000")

	hash2, key2, err := IdentityOf(`{"b": 2, "a": 1}`)
	require.NoError(t, err)
	assert.Equal(t, hash, hash2, "field order must not affect identity")
	assert.Equal(t, key, key2)
}
