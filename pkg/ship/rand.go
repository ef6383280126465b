package ship

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"

	"gopkg.in/yaml.v3"
)

type seedKind uint8

const (
	seedRandom seedKind = iota
	seedString
	seedInt
)

// PCG stream selectors, so a string and an integer never share a stream
const (
	streamString uint64 = 0x5eed_0001
	streamInt    uint64 = 0x5eed_0002
)

// Seed selects the random stream of a generation. The zero value is a
// non-reproducible seed.
type Seed struct {
	kind  seedKind
	text  string
	value int64
}

// RandomSeed returns a seed that produces a different ship every time
func RandomSeed() Seed {
	return Seed{}
}

// StringSeed seeds from the exact text. The empty string is random.
func StringSeed(text string) Seed {
	if text == "" {
		return Seed{}
	}
	return Seed{kind: seedString, text: text}
}

// IntSeed seeds from an integer
func IntSeed(value int64) Seed {
	return Seed{kind: seedInt, value: value}
}

// ParseSeed accepts a string, any integer type or a Seed. Anything else
// yields a random seed.
func ParseSeed(v any) Seed {
	switch x := v.(type) {
	case Seed:
		return x
	case string:
		return StringSeed(x)
	case int:
		return IntSeed(int64(x))
	case int8:
		return IntSeed(int64(x))
	case int16:
		return IntSeed(int64(x))
	case int32:
		return IntSeed(int64(x))
	case int64:
		return IntSeed(x)
	case uint:
		return IntSeed(int64(x))
	case uint8:
		return IntSeed(int64(x))
	case uint16:
		return IntSeed(int64(x))
	case uint32:
		return IntSeed(int64(x))
	case uint64:
		return IntSeed(int64(x))
	}
	return RandomSeed()
}

// IsInt reports whether the seed was given as an integer
func (s Seed) IsInt() bool {
	return s.kind == seedInt
}

// IsRandom reports whether the seed is non-reproducible
func (s Seed) IsRandom() bool {
	return s.kind == seedRandom
}

// String returns the seed text, the decimal integer, or "" for random seeds
func (s Seed) String() string {
	switch s.kind {
	case seedString:
		return s.text
	case seedInt:
		return strconv.FormatInt(s.value, 10)
	}
	return ""
}

// Describe returns a human readable form for logs
func (s Seed) Describe() string {
	switch s.kind {
	case seedString:
		return strconv.Quote(s.text)
	case seedInt:
		return strconv.FormatInt(s.value, 10)
	}
	return "random"
}

// NewRand returns a fresh stream for this seed
func (s Seed) NewRand() *Rand {
	switch s.kind {
	case seedString:
		h := fnv.New64a()
		h.Write([]byte(s.text))
		return &Rand{r: rand.New(rand.NewPCG(h.Sum64(), streamString))}
	case seedInt:
		return &Rand{r: rand.New(rand.NewPCG(uint64(s.value), streamInt))}
	}
	return &Rand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// UnmarshalYAML decodes integers and strings; any other non-null node is a
// random seed. yaml.v3 skips unmarshalers for null values, so a null seed is
// handled by Config.UnmarshalYAML.
func (s *Seed) UnmarshalYAML(node *yaml.Node) error {
	*s = RandomSeed()
	if node.Kind != yaml.ScalarNode {
		return nil
	}
	switch node.Tag {
	case "!!int":
		if v, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			*s = IntSeed(v)
		}
	case "!!str":
		*s = StringSeed(node.Value)
	}
	return nil
}

// MarshalYAML writes integers as integers and everything else as a string
func (s Seed) MarshalYAML() (any, error) {
	if s.kind == seedInt {
		return s.value, nil
	}
	return s.String(), nil
}

// Rand is the single random stream threaded through every pipeline stage
type Rand struct {
	r *rand.Rand
}

// Float64 returns a draw in [0, 1)
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Uniform returns a draw in [lo, hi)
func (r *Rand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.r.Float64()
}

// IntRange returns a draw in [lo, hi). An empty range returns lo without drawing.
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo)
}

// IntInclusive returns a draw in [lo, hi]
func (r *Rand) IntInclusive(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Sign returns -1 when a draw exceeds 0.5 and 1 otherwise
func (r *Rand) Sign() float64 {
	if r.r.Float64() > 0.5 {
		return -1
	}
	return 1
}
