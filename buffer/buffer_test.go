// Package buffer_test contains unit tests for Buffer sizing and element access.
package buffer_test

import (
	"testing"

	"github.com/katalvlaran/mvec/buffer"
	"github.com/stretchr/testify/require"
)

// TestNewLengthCapacity verifies the initial shape of a fresh buffer.
func TestNewLengthCapacity(t *testing.T) {
	tr := newTracker(t)
	b := buffer.New[float64](tr, 3)
	defer func() { require.NoError(t, b.Destroy()) }()

	require.Equal(t, buffer.Span64, b.Span())
	require.Equal(t, 0, b.Len())
	require.Equal(t, 24, b.Cap())
	require.Equal(t, 0, b.Count())
	require.Equal(t, buffer.Unlocked, b.Owner())
}

// TestSpanOf checks the span derived from each element type.
func TestSpanOf(t *testing.T) {
	require.Equal(t, buffer.Span8, buffer.SpanOf[uint8]())
	require.Equal(t, buffer.Span16, buffer.SpanOf[int16]())
	require.Equal(t, buffer.Span32, buffer.SpanOf[float32]())
	require.Equal(t, buffer.Span64, buffer.SpanOf[uint64]())
	require.True(t, buffer.SpanOf[int32]().Valid())
	require.False(t, buffer.Span(3).Valid())
	require.Equal(t, 4, buffer.Span32.Bytes())
}

// TestSetLengthExactGrowth ensures growth is exact and alignment is enforced.
func TestSetLengthExactGrowth(t *testing.T) {
	tr := newTracker(t)
	b := buffer.New[uint16](tr, 2)
	defer func() { require.NoError(t, b.Destroy()) }()

	require.NoError(t, b.SetLength(10))
	require.Equal(t, 10, b.Len())
	require.Equal(t, 10, b.Cap()) // exactly the request, not doubled
	require.Equal(t, 5, b.Count())

	require.NoError(t, b.SetLength(4))
	require.Equal(t, 4, b.Len())
	require.Equal(t, 10, b.Cap())

	require.ErrorIs(t, b.SetLength(3), buffer.ErrMisaligned)
	require.ErrorIs(t, b.SetLength(-2), buffer.ErrMisaligned)
	require.ErrorIs(t, b.SetCount(-1), buffer.ErrOutOfRange)
}

// TestSetCountZeroesExposed ensures regrown elements read as zero.
func TestSetCountZeroesExposed(t *testing.T) {
	tr := newTracker(t)
	b := buffer.FromRaw(tr, []int32{1, 2, 3})
	defer func() { require.NoError(t, b.Destroy()) }()

	require.NoError(t, b.SetCount(1))
	require.NoError(t, b.SetCount(3))
	require.Equal(t, []int32{1, 0, 0}, b.Values())
}

// TestFromRawCopies ensures the buffer does not alias its source slice.
func TestFromRawCopies(t *testing.T) {
	tr := newTracker(t)
	src := []float32{1, 2, 3}
	b := buffer.FromRaw(tr, src)
	defer func() { require.NoError(t, b.Destroy()) }()

	src[0] = 42
	require.Equal(t, []float32{1, 2, 3}, b.Values())
	require.Equal(t, 12, b.Len())
	require.Equal(t, 12, b.Cap())
}

// TestGetSetBounds validates the checked accessors.
func TestGetSetBounds(t *testing.T) {
	tr := newTracker(t)
	b := buffer.FromRaw(tr, []int64{10, 20})
	defer func() { require.NoError(t, b.Destroy()) }()

	v, err := b.Get(1)
	require.NoError(t, err)
	require.Equal(t, int64(20), v)

	require.NoError(t, b.Set(0, 11))
	require.Equal(t, int64(11), *b.At(0))

	*b.At(1) = 21
	v, err = b.Get(1)
	require.NoError(t, err)
	require.Equal(t, int64(21), v)

	_, err = b.Get(2)
	require.ErrorIs(t, err, buffer.ErrOutOfRange)
	_, err = b.Get(-1)
	require.ErrorIs(t, err, buffer.ErrOutOfRange)
	require.ErrorIs(t, b.Set(2, 0), buffer.ErrOutOfRange)
}

// TestAppendPop exercises push/pop with exact growth.
func TestAppendPop(t *testing.T) {
	tr := newTracker(t)
	b := buffer.New[uint8](tr, 1)
	defer func() { require.NoError(t, b.Destroy()) }()

	require.NoError(t, b.Append(1, 2, 3))
	require.Equal(t, 3, b.Cap())

	out, err := b.Pop(2)
	require.NoError(t, err)
	require.Equal(t, []uint8{2, 3}, out)
	require.Equal(t, []uint8{1}, b.Values())
	require.Equal(t, 3, b.Cap())

	_, err = b.Pop(5)
	require.ErrorIs(t, err, buffer.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone is a deep copy.
func TestCloneIndependence(t *testing.T) {
	tr := newTracker(t)
	b := buffer.FromRaw(tr, []int16{1, 2})
	c, err := b.Clone()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, b.Destroy())
		require.NoError(t, c.Destroy())
	}()

	require.NoError(t, c.Set(0, 9))
	require.Equal(t, []int16{1, 2}, b.Values())
	require.Equal(t, []int16{9, 2}, c.Values())
}

// TestCloneDestroyed rejects cloning after Destroy without charging the tracker.
func TestCloneDestroyed(t *testing.T) {
	tr, rec, _ := fatalTracker(t)
	b := buffer.FromRaw(tr, []int16{1, 2})
	require.NoError(t, b.Destroy())

	c, err := b.Clone()
	require.ErrorIs(t, err, buffer.ErrDestroyed)
	require.Nil(t, c)
	require.Equal(t, []int{1}, rec.codes)
	require.Zero(t, tr.Live())
}

// TestCheck honors the checked mode of the owning tracker.
func TestCheck(t *testing.T) {
	var nilBuf *buffer.Buffer[int8]
	require.ErrorIs(t, nilBuf.Check(), buffer.ErrNilBuffer)

	checked := newTracker(t)
	b := buffer.New[int8](checked, 1)
	require.NoError(t, b.Check())
	require.NoError(t, b.Destroy())
	require.ErrorIs(t, b.Check(), buffer.ErrDestroyed)

	unchecked := newTracker(t, buffer.WithChecks(false))
	u := buffer.New[int8](unchecked, 1)
	require.NoError(t, u.Destroy())
	require.NoError(t, u.Check())
}

// TestBytesView checks the raw escape hatch length and contents.
func TestBytesView(t *testing.T) {
	tr := newTracker(t)
	b := buffer.FromRaw(tr, []uint32{0x01020304, 0})
	defer func() { require.NoError(t, b.Destroy()) }()

	raw := b.Bytes()
	require.Len(t, raw, 8)
	require.ElementsMatch(t, []byte{1, 2, 3, 4}, raw[:4]) // host byte order
	require.Equal(t, []byte{0, 0, 0, 0}, raw[4:])

	empty := buffer.New[uint32](tr, 1)
	require.Nil(t, empty.Bytes())
	require.NoError(t, empty.Destroy())
}

// TestUseAfterDestroy ensures checked mode reports destroyed buffers.
func TestUseAfterDestroy(t *testing.T) {
	tr := newTracker(t)
	b := buffer.FromRaw(tr, []float32{1})
	require.NoError(t, b.Destroy())

	_, err := b.Get(0)
	require.ErrorIs(t, err, buffer.ErrDestroyed)
	require.ErrorIs(t, b.SetCount(2), buffer.ErrDestroyed)
	require.ErrorIs(t, b.Append(1), buffer.ErrDestroyed)
}

// TestNilBuffer reports a nil receiver instead of panicking.
func TestNilBuffer(t *testing.T) {
	var b *buffer.Buffer[int32]
	require.ErrorIs(t, b.Destroy(), buffer.ErrNilBuffer)
	require.ErrorIs(t, b.SetCount(1), buffer.ErrNilBuffer)
}

// TestUncheckedOutOfRangePanics shows unchecked mode still cannot corrupt memory.
func TestUncheckedOutOfRangePanics(t *testing.T) {
	tr := newTracker(t, buffer.WithChecks(false))
	b := buffer.FromRaw(tr, []int32{1, 2, 3})
	defer func() { require.NoError(t, b.Destroy()) }()

	require.Panics(t, func() { _, _ = buffer.Sub(b, 2, 5) })
	require.Panics(t, func() { _ = b.At(3) })
}
