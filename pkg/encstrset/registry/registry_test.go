package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New[int]()
	assert.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, Handle(0), r.Next())
}

func TestCreateAndGet(t *testing.T) {
	r := New[string]()

	h1 := r.Create("one")
	h2 := r.Create("two")

	assert.Equal(t, Handle(0), h1)
	assert.Equal(t, Handle(1), h2)

	v, ok := r.Get(h1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	v, ok = r.Get(h2)
	assert.True(t, ok)
	assert.Equal(t, "two", v)

	// Never issued
	v, ok = r.Get(42)
	assert.False(t, ok)
	assert.Equal(t, "", v) // zero value
}

func TestHandlesAreNeverReused(t *testing.T) {
	r := New[int]()

	h := r.Create(1)
	require.True(t, r.Delete(h))

	next := r.Create(2)
	assert.NotEqual(t, h, next)
	assert.Equal(t, h+1, next)
	assert.False(t, r.Has(h))
}

func TestCounterAdvancesPastDeletes(t *testing.T) {
	r := New[int]()

	for i := range 10 {
		h := r.Create(i)
		r.Delete(h)
	}

	assert.Equal(t, Handle(10), r.Next())
	assert.Equal(t, 0, r.Len())
}

func TestHas(t *testing.T) {
	r := New[int]()
	h := r.Create(42)

	assert.True(t, r.Has(h))
	assert.False(t, r.Has(h+1))
}

func TestDelete(t *testing.T) {
	r := New[int]()
	h := r.Create(42)

	assert.True(t, r.Delete(h))
	assert.False(t, r.Has(h))
	_, ok := r.Get(h)
	assert.False(t, ok)
}

func TestDeleteUnknown(t *testing.T) {
	r := New[int]()
	r.Create(42)

	// Should not panic
	assert.False(t, r.Delete(999))
	assert.Equal(t, 1, r.Len())
}

func TestDeleteTwice(t *testing.T) {
	r := New[int]()
	h := r.Create(42)

	assert.True(t, r.Delete(h))
	assert.False(t, r.Delete(h))
}

func TestHandles(t *testing.T) {
	r := New[string]()
	r.Create("a")
	h := r.Create("b")
	r.Create("c")
	r.Delete(h)

	assert.Equal(t, []Handle{0, 2}, r.Handles())
}

func TestHandlesEmpty(t *testing.T) {
	r := New[string]()
	assert.Empty(t, r.Handles())
}

func TestLen(t *testing.T) {
	r := New[int]()
	assert.Equal(t, 0, r.Len())

	h := r.Create(1)
	assert.Equal(t, 1, r.Len())

	r.Create(2)
	assert.Equal(t, 2, r.Len())

	r.Delete(h)
	assert.Equal(t, 1, r.Len())
}

func TestHandleString(t *testing.T) {
	assert.Equal(t, "0", Handle(0).String())
	assert.Equal(t, "18446744073709551615", Handle(^uint64(0)).String())
}

func TestAll(t *testing.T) {
	r := New[string]()
	r.Create("zero")
	r.Create("one")
	r.Create("two")
	r.Delete(1)
	r.Create("three")

	var handles []Handle
	var values []string
	for h, v := range r.All() {
		handles = append(handles, h)
		values = append(values, v)
	}

	assert.Equal(t, []Handle{0, 2, 3}, handles)
	assert.Equal(t, []string{"zero", "two", "three"}, values)
}

func TestAllEarlyStop(t *testing.T) {
	r := New[int]()
	r.Create(1)
	r.Create(2)
	r.Create(3)

	count := 0
	for range r.All() {
		count++
		break
	}

	assert.Equal(t, 1, count)
}

func TestAllEmpty(t *testing.T) {
	r := New[int]()

	called := false
	for range r.All() {
		called = true
	}

	assert.False(t, called)
}

func TestAllAllowsMutation(t *testing.T) {
	r := New[int]()
	r.Create(1)
	r.Create(2)

	var seen []int
	for h, v := range r.All() {
		seen = append(seen, v)
		r.Create(v * 10)
		r.Delete(h)
	}

	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, []Handle{2, 3}, r.Handles())
}

func TestAllSnapshotsPerIteration(t *testing.T) {
	r := New[int]()
	all := r.All()
	r.Create(7)

	var got []int
	for _, v := range all {
		got = append(got, v)
	}

	assert.Equal(t, []int{7}, got)
}

func TestPointerValues(t *testing.T) {
	r := New[*int]()
	h := r.Create(nil)

	v, ok := r.Get(h)
	assert.True(t, ok)
	assert.Nil(t, v)

	// Distinguish nil value from missing handle
	_, ok = r.Get(h + 1)
	assert.False(t, ok)
}

// Thread-safety tests

func TestConcurrentCreate(t *testing.T) {
	r := New[int]()
	var wg sync.WaitGroup
	n := 1000

	handles := make([]Handle, n)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = r.Create(i)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, n, r.Len())
	assert.Equal(t, Handle(n), r.Next())

	seen := make(map[Handle]bool, n)
	for _, h := range handles {
		assert.False(t, seen[h], "handle %d issued twice", h)
		seen[h] = true
	}
}

func TestConcurrentReadWrite(t *testing.T) {
	r := New[int]()
	var wg sync.WaitGroup
	stop := make(chan struct{})

	// Writers
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					h := r.Create(1)
					r.Delete(h)
				}
			}
		}()
	}

	// Readers
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					r.Handles()
					r.Len()
					for range r.All() {
					}
				}
			}
		}()
	}

	close(stop)
	wg.Wait()
}

func TestConcurrentDelete(t *testing.T) {
	r := New[int]()
	for i := range 100 {
		r.Create(i)
	}

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(h Handle) {
			defer wg.Done()
			r.Delete(h)
		}(Handle(i))
	}

	wg.Wait()

	assert.Equal(t, 0, r.Len())
}

// Benchmark tests

func BenchmarkGet(b *testing.B) {
	r := New[int]()
	for i := range 1000 {
		r.Create(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Get(Handle(i % 1000))
	}
}

func BenchmarkCreate(b *testing.B) {
	r := New[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Create(i)
	}
}

func BenchmarkConcurrentGet(b *testing.B) {
	r := New[int]()
	for i := range 1000 {
		r.Create(i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			r.Get(Handle(i % 1000))
			i++
		}
	})
}
