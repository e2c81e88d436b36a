package shareable

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCellSingle(t *testing.T) {
	c := New(float32(-79.23))

	require.Equal(t, float32(-79.23), c.Get())
	require.False(t, c.IsShared())

	c.Set(41.78)
	require.Equal(t, float32(41.78), c.Get())
	require.False(t, c.IsShared())
}

func TestCellMultiple(t *testing.T) {
	c1 := New(float32(-79.6))
	c2 := c1.Dup()
	c3 := c2.Dup()

	require.True(t, c1.IsShared())
	require.True(t, c2.IsShared())
	require.True(t, c3.IsShared())

	require.Equal(t, float32(-79.6), c1.Get())
	require.Equal(t, float32(-79.6), c2.Get())
	require.Equal(t, float32(-79.6), c3.Get())

	c1.Set(51.98)
	require.Equal(t, float32(51.98), c1.Get())
	require.Equal(t, float32(51.98), c2.Get())
	require.Equal(t, float32(51.98), c3.Get())

	c2.Set(31.77)
	require.Equal(t, float32(31.77), c1.Get())
	require.Equal(t, float32(31.77), c2.Get())
	require.Equal(t, float32(31.77), c3.Get())

	c3.Set(-11.101)
	require.Equal(t, float32(-11.101), c1.Get())
	require.Equal(t, float32(-11.101), c2.Get())
	require.Equal(t, float32(-11.101), c3.Get())
}

// Every handle of a lineage references the one backing allocated at the
// first Dup; duplicating again never allocates another.
func TestCellOneBackingPerLineage(t *testing.T) {
	c1 := New(7)
	c2 := c1.Dup()
	c3 := c2.Dup()
	c4 := c1.Dup()

	require.Same(t, c1.shared, c2.shared)
	require.Same(t, c1.shared, c3.shared)
	require.Same(t, c1.shared, c4.shared)
}

func TestCellIndependentLineages(t *testing.T) {
	a := New(100)
	b := New(100)
	a.Dup()
	b.Dup()

	a.Set(1)
	require.Equal(t, 1, a.Get())
	require.Equal(t, 100, b.Get())
}

func TestCellTypes(t *testing.T) {
	bc := New(true).Dup()
	require.Equal(t, true, bc.Get())
	bc.Set(false)
	require.Equal(t, false, bc.Get())

	i8 := New(int8(-128)).Dup()
	require.Equal(t, int8(-128), i8.Get())
	i8.Set(127)
	require.Equal(t, int8(127), i8.Get())

	u16 := New(uint16(0xbeef)).Dup()
	require.Equal(t, uint16(0xbeef), u16.Get())

	i64 := New(int64(math.MinInt64)).Dup()
	require.Equal(t, int64(math.MinInt64), i64.Get())
	i64.Set(math.MaxInt64)
	require.Equal(t, int64(math.MaxInt64), i64.Get())

	u64 := New(uint64(math.MaxUint64)).Dup()
	require.Equal(t, uint64(math.MaxUint64), u64.Get())

	f64 := New(3.14159265358979).Dup()
	require.Equal(t, 3.14159265358979, f64.Get())
}

// Defined scalar types work through the ~ constraint elements.
func TestCellNamedTypes(t *testing.T) {
	type level uint8
	c := New(level(3))
	d := c.Dup()
	d.Set(level(9))
	require.Equal(t, level(9), c.Get())
}

// NaN payloads and zero signs survive the trip through the word backing
// bit for bit.
func TestCellFloatBitPatterns(t *testing.T) {
	nan64 := math.Float64frombits(0xfff8_0000_0000_0dea)
	c := New(0.0)
	c.Dup()
	c.Set(nan64)
	require.Equal(t, uint64(0xfff8_0000_0000_0dea), math.Float64bits(c.Get()))

	c.Set(math.Copysign(0, -1))
	require.True(t, math.Signbit(c.Get()))
	require.Equal(t, 0.0, c.Get())

	nan32 := math.Float32frombits(0xffc0_0abc)
	f := New(float32(0))
	f.Dup()
	f.Set(nan32)
	require.Equal(t, uint32(0xffc0_0abc), math.Float32bits(f.Get()))
}

// The mutex backing is what 32-bit targets use for 64-bit scalars. Force
// it here so the path is covered regardless of the host word width.
func TestCellMutexBacking(t *testing.T) {
	b := &scalarBacking[float64]{fits: false}
	b.store(-79.6)

	c1 := &Cell[float64]{shared: b}
	c2 := c1.Dup()

	require.Equal(t, -79.6, c1.Get())
	require.Equal(t, -79.6, c2.Get())

	c2.Set(51.98)
	require.Equal(t, 51.98, c1.Get())
	require.Equal(t, 51.98, c2.Get())

	nan := math.Float64frombits(0x7ff0_dead_beef_0001)
	c1.Set(nan)
	require.Equal(t, uint64(0x7ff0_dead_beef_0001), math.Float64bits(c2.Get()))
}

func TestCellBackingSelection(t *testing.T) {
	require.True(t, fitsWord[bool]())
	require.True(t, fitsWord[uint32]())
	require.Equal(t, wordBits >= 64, fitsWord[float64]())
	require.Equal(t, wordBits >= 64, fitsWord[int64]())

	c := New(int64(1))
	c.Dup()
	require.Equal(t, wordBits >= 64, c.shared.fits)
}

// A write on one goroutine is visible on another after a channel handoff.
func TestCellHandoff(t *testing.T) {
	c1 := New(float32(63.23))
	c2 := c1.Dup()

	ready := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ready
		require.Equal(t, float32(31.83), c2.Get())
	}()

	c1.Set(31.83)
	close(ready)
	<-done
}

func TestCellHammer(t *testing.T) {
	const workers = 8
	const ops = 2000

	c := New(uint64(0))
	g := new(errgroup.Group)
	for w := 0; w < workers; w++ {
		h := c.Dup()
		g.Go(func() error {
			for i := 0; i < ops; i++ {
				h.Set(h.Get() + 1)
				if i%64 == 0 {
					h = h.Dup()
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Lost updates are expected, torn values are not.
	require.LessOrEqual(t, c.Get(), uint64(workers*ops))
	require.Greater(t, c.Get(), uint64(0))
}

// Promotion of distinct cells may happen concurrently; only the lineage
// itself is single-owner before its first Dup.
func TestCellConcurrentPromotion(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := New(i)
			d := c.Dup()
			d.Set(i + 1)
			require.Equal(t, i+1, c.Get())
		}()
	}
	wg.Wait()
}

func TestCellString(t *testing.T) {
	c := New(int32(42))
	require.Equal(t, "42", c.String())
	require.Equal(t, "42", fmt.Sprintf("%v", c))
	require.Equal(t, "42", fmt.Sprintf("%#v", c))

	c.Dup()
	c.Set(-7)
	require.Equal(t, "-7", c.String())
}

func BenchmarkCellUnsharedGet(b *testing.B) {
	c := New(uint64(1))
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink = c.Get()
	}
	_ = sink
}

func BenchmarkCellSharedGet(b *testing.B) {
	c := New(uint64(1))
	c.Dup()
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink = c.Get()
	}
	_ = sink
}

func BenchmarkCellSharedSet(b *testing.B) {
	c := New(uint64(1))
	c.Dup()
	for i := 0; i < b.N; i++ {
		c.Set(uint64(i))
	}
}

func BenchmarkCellMutexGet(b *testing.B) {
	bk := &scalarBacking[uint64]{fits: false}
	bk.store(1)
	c := &Cell[uint64]{shared: bk}
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink = c.Get()
	}
	_ = sink
}
