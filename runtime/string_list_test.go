package runtime

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_EmptySingleton(t *testing.T) {
	empty := EmptyStringList()
	assert.Same(t, empty, EmptyStringList())
	assert.True(t, empty.Untouched())
	assert.True(t, empty.Shared())
	assert.Equal(t, 0, empty.Len())

	var nilList *StringList
	assert.True(t, nilList.Untouched())
	assert.Equal(t, 0, nilList.Len())
	assert.Nil(t, nilList.Slice())
}

func TestStringList_AppendCopiesShared(t *testing.T) {
	empty := EmptyStringList()
	l := empty.Append("x", "y")

	assert.NotSame(t, empty, l)
	assert.Equal(t, 0, empty.Len(), "shared empty list must stay empty")
	assert.Equal(t, []string{"x", "y"}, l.Slice())
	assert.False(t, l.Untouched())

	// owned lists grow in place
	same := l.Append("z")
	assert.Same(t, l, same)
	assert.Equal(t, 3, same.Len())
}

func TestStringList_AppendNothing(t *testing.T) {
	empty := EmptyStringList()
	assert.Same(t, empty, empty.Append())
	assert.Same(t, empty, empty.AppendList(NewStringList()))
}

func TestStringList_FreezeThenMutate(t *testing.T) {
	src := NewStringList().Append("a", "b")
	shared := src.Freeze()
	require.Same(t, src, shared)

	dst := shared.Append("c")
	assert.NotSame(t, src, dst)
	assert.Equal(t, []string{"a", "b"}, src.Slice())
	assert.Equal(t, []string{"a", "b", "c"}, dst.Slice())

	replaced := shared.Set(0, "A")
	assert.NotSame(t, src, replaced)
	assert.Equal(t, "a", src.Get(0))
	assert.Equal(t, "A", replaced.Get(0))
}

func TestStringList_Set(t *testing.T) {
	l := NewStringList().Append("a", "b")
	out := l.Set(1, "B")
	assert.Same(t, l, out)
	assert.Equal(t, []string{"a", "B"}, l.Slice())

	assert.Panics(t, func() { l.Set(2, "c") })
	assert.Panics(t, func() { EmptyStringList().Set(0, "c") })
}

func TestStringList_AppendList(t *testing.T) {
	l := NewStringList().Append("a")
	other := NewStringList().Append("b", "c")
	l = l.AppendList(other)
	assert.Equal(t, []string{"a", "b", "c"}, l.Slice())
	assert.Equal(t, []string{"b", "c"}, other.Slice())
}

func TestStringList_EqualAndHash(t *testing.T) {
	tests := []struct {
		name  string
		a, b  *StringList
		equal bool
	}{
		{"both empty", EmptyStringList(), NewStringList(), true},
		{"nil and empty", nil, EmptyStringList(), true},
		{"same elements", NewStringList().Append("x", "y"), NewStringList().Append("x", "y"), true},
		{"order matters", NewStringList().Append("x", "y"), NewStringList().Append("y", "x"), false},
		{"length differs", NewStringList().Append("x"), NewStringList().Append("x", "x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
			if tt.equal {
				assert.Equal(t, tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestStringList_View(t *testing.T) {
	l := NewStringList().Append("x", "y")
	v := l.View()
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, "y", v.Get(1))

	var got []string
	for i, s := range v.All() {
		assert.Equal(t, len(got), i)
		got = append(got, s)
	}
	assert.Equal(t, []string{"x", "y"}, got)

	// Slice is a copy
	v.Slice()[0] = "changed"
	assert.Equal(t, "x", l.Get(0))

	var nilList *StringList
	assert.Equal(t, 0, nilList.View().Len())
}

func TestStringList_ConcurrentWritersOnFrozen(t *testing.T) {
	shared := NewStringList().Append("a", "b").Freeze()

	const writers = 8
	out := make([]*StringList, writers)
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[i] = shared.Append(strconv.Itoa(i))
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"a", "b"}, shared.Slice())
	for i, l := range out {
		assert.NotSame(t, shared, l)
		assert.Equal(t, []string{"a", "b", strconv.Itoa(i)}, l.Slice())
	}
}
