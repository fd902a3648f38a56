package encstrset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario_InsertCopyRemove walks a full lifecycle across two sets.
func TestScenario_InsertCopyRemove(t *testing.T) {
	s := New()

	h1 := s.Create()
	assert.True(t, s.Insert(h1, String("abc"), nil))
	assert.False(t, s.Insert(h1, String("abc"), nil))
	assert.Equal(t, 1, s.Size(h1))

	// Different cipher since the key differs and is non-empty
	assert.True(t, s.Insert(h1, String("abc"), String("k")))
	assert.Equal(t, 2, s.Size(h1))

	h2 := s.Create()
	s.Copy(h1, h2)
	assert.Equal(t, 2, s.Size(h2))

	assert.True(t, s.Remove(h1, String("abc"), nil))
	assert.Equal(t, 1, s.Size(h1))
	assert.Equal(t, 2, s.Size(h2), "unaffected by later removal from h1")
}

// TestScenario_InvalidArguments covers absent values and unknown handles.
func TestScenario_InvalidArguments(t *testing.T) {
	s := New()
	h := s.Create()

	assert.False(t, s.Insert(h, nil, nil))
	assert.False(t, s.Test(h, nil, String("k")))
	assert.False(t, s.Remove(unknown, String("x"), nil))
	assert.Equal(t, 0, s.Size(unknown))
}

// TestScenario_AbsentVersusEmpty mirrors the invalid value/key edge cases:
// nil never matches, "" is an ordinary value.
func TestScenario_AbsentVersusEmpty(t *testing.T) {
	s := New()
	id := s.Create()
	notID := id + 1

	assert.False(t, s.Remove(id, nil, nil))
	assert.False(t, s.Test(id, nil, nil))
	assert.False(t, s.Insert(id, nil, nil))

	assert.False(t, s.Remove(id, nil, String("")))
	assert.False(t, s.Test(id, nil, String("")))
	assert.False(t, s.Insert(id, nil, String("")))
	assert.False(t, s.Remove(notID, nil, String("")))
	assert.False(t, s.Test(notID, nil, String("")))
	assert.False(t, s.Insert(notID, nil, String("")))

	assert.False(t, s.Remove(id, String(""), nil))
	assert.False(t, s.Test(id, String(""), nil))
	assert.True(t, s.Insert(id, String(""), nil))
	assert.True(t, s.Test(id, String(""), nil))
	assert.True(t, s.Test(id, String(""), String("")))
	assert.True(t, s.Test(id, String(""), String("aaa")))

	s.Destroy(id)
}

func TestProperty_InsertTestRemove(t *testing.T) {
	r := rand.New(rand.NewSource(2137))
	s := New()
	h := s.Create()

	for i := 0; i < 300; i++ {
		value := randomString(r, r.Intn(40))
		key := optionalKey(r)

		s.Insert(h, &value, key)
		require.True(t, s.Test(h, &value, key))
		require.True(t, s.Remove(h, &value, key))
		require.False(t, s.Test(h, &value, key))
	}
	assert.Equal(t, 0, s.Size(h))
}

func TestProperty_DuplicateInsertKeepsSize(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	s := New()
	h := s.Create()

	for i := 0; i < 300; i++ {
		value := randomString(r, r.Intn(40))
		key := optionalKey(r)

		s.Insert(h, &value, key)
		before := s.Size(h)
		require.False(t, s.Insert(h, &value, key))
		require.Equal(t, before, s.Size(h))
	}
}

func TestProperty_AbsentValueNeverMatches(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s := New()
	handles := []Handle{s.Create(), s.Create(), unknown}
	s.Insert(handles[0], String(""), nil)

	for i := 0; i < 100; i++ {
		h := handles[r.Intn(len(handles))]
		key := optionalKey(r)
		require.False(t, s.Remove(h, nil, key))
		require.False(t, s.Test(h, nil, key))
		require.False(t, s.Insert(h, nil, key))
	}
	assert.Equal(t, 1, s.Size(handles[0]))
}

func TestProperty_CopyCarriesEveryElement(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	s := New()
	a := s.Create()
	b := s.Create()

	type arg struct {
		value string
		key   *string
	}
	var inserted []arg
	for i := 0; i < 200; i++ {
		v := randomString(r, 1+r.Intn(20))
		k := optionalKey(r)
		s.Insert(a, &v, k)
		inserted = append(inserted, arg{v, k})
	}

	s.Copy(a, b)

	for _, in := range inserted {
		require.True(t, s.Test(b, &in.value, in.key))
	}
	assert.Equal(t, s.Size(a), s.Size(b))

	late := "inserted after copy"
	s.Insert(a, &late, nil)
	assert.False(t, s.Test(b, &late, nil))
}

// TestProperty_RandomKeysAndValues inserts many random pairs drawn from a
// fixed pool and checks the set tracks a reference model.
func TestProperty_RandomKeysAndValues(t *testing.T) {
	r := rand.New(rand.NewSource(2137))
	pool := make([]string, 100)
	for i := range pool {
		pool[i] = randomString(r, 50)
	}

	s := New()
	h := s.Create()
	model := map[string]struct{}{}

	for i := 0; i < 10000; i++ {
		v, k := pool[r.Intn(100)], pool[r.Intn(100)]
		cipher := xorString(v, k)
		_, had := model[cipher]
		model[cipher] = struct{}{}

		require.Equal(t, !had, s.Insert(h, &v, &k))
	}
	assert.Equal(t, len(model), s.Size(h))
}

func randomString(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.Intn(256))
	}
	return string(b)
}

// optionalKey returns nil, "" or a random non-empty key.
func optionalKey(r *rand.Rand) *string {
	switch r.Intn(3) {
	case 0:
		return nil
	case 1:
		return String("")
	default:
		k := randomString(r, 1+r.Intn(8))
		return &k
	}
}

func xorString(v, k string) string {
	out := []byte(v)
	for i := range out {
		out[i] ^= k[i%len(k)]
	}
	return string(out)
}
