package ship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSeedKinds(t *testing.T) {
	assert.True(t, StringSeed("").IsRandom())
	assert.True(t, RandomSeed().IsRandom())
	assert.False(t, StringSeed("42").IsRandom())
	assert.False(t, IntSeed(0).IsRandom())
	assert.True(t, IntSeed(0).IsInt())
	assert.False(t, StringSeed("0").IsInt())

	assert.Equal(t, IntSeed(4), ParseSeed(int32(4)))
	assert.Equal(t, IntSeed(7), ParseSeed(uint8(7)))
	assert.Equal(t, StringSeed("abc"), ParseSeed("abc"))
	assert.True(t, ParseSeed(3.5).IsRandom())
	assert.True(t, ParseSeed(nil).IsRandom())
	assert.True(t, ParseSeed([]int{1}).IsRandom())

	assert.Equal(t, "42", StringSeed("42").String())
	assert.Equal(t, "42", IntSeed(42).String())
	assert.Equal(t, `"42"`, StringSeed("42").Describe())
	assert.Equal(t, "random", RandomSeed().Describe())
}

func TestSeedStreams(t *testing.T) {
	a, b := StringSeed("falcon").NewRand(), StringSeed("falcon").NewRand()
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}

	asString, asInt := StringSeed("42").NewRand(), IntSeed(42).NewRand()
	assert.NotEqual(t, asString.Float64(), asInt.Float64())
}

func TestRandHelpers(t *testing.T) {
	r := IntSeed(1).NewRand()
	for i := 0; i < 200; i++ {
		u := r.Uniform(0.3, 1)
		assert.GreaterOrEqual(t, u, 0.3)
		assert.Less(t, u, 1.0)

		n := r.IntRange(3, 6)
		assert.GreaterOrEqual(t, n, 3)
		assert.Less(t, n, 6)

		k := r.IntInclusive(2, 4)
		assert.GreaterOrEqual(t, k, 2)
		assert.LessOrEqual(t, k, 4)

		s := r.Sign()
		assert.True(t, s == 1 || s == -1)
	}

	// empty ranges take no draw
	x, y := IntSeed(9).NewRand(), IntSeed(9).NewRand()
	assert.Equal(t, 5, x.IntRange(5, 5))
	assert.Equal(t, 5, x.IntRange(5, 2))
	assert.Equal(t, y.Float64(), x.Float64())
}

func TestSeedYAML(t *testing.T) {
	tests := []struct {
		input    string
		expected Seed
	}{
		{"seed: 42", IntSeed(42)},
		{`seed: "42"`, StringSeed("42")},
		{"seed: falcon", StringSeed("falcon")},
		{`seed: ""`, RandomSeed()},
		{"seed: 1.5", RandomSeed()},
		{"seed: [1, 2]", RandomSeed()},
		{"seed: ~", RandomSeed()},
		{"seed:", RandomSeed()},
		{"bevel: false", IntSeed(99)},
	}

	for _, tt := range tests {
		doc := DefaultConfig()
		doc.Seed = IntSeed(99)
		require.NoError(t, yaml.Unmarshal([]byte(tt.input), &doc), tt.input)
		assert.Equal(t, tt.expected, doc.Seed, tt.input)
	}
}

func TestSeedYAMLRoundTrip(t *testing.T) {
	for _, seed := range []Seed{IntSeed(-3), StringSeed("42"), RandomSeed()} {
		data, err := yaml.Marshal(struct {
			Seed Seed `yaml:"seed"`
		}{seed})
		require.NoError(t, err)

		var doc struct {
			Seed Seed `yaml:"seed"`
		}
		require.NoError(t, yaml.Unmarshal(data, &doc))
		assert.Equal(t, seed, doc.Seed, string(data))
	}
}
