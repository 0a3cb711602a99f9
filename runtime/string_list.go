// Package runtime provides the types used by generated leo messages.
package runtime

import (
	"iter"
	"slices"
	"sync/atomic"
)

// StringView is the read-only face of a repeated string field.
type StringView interface {
	Len() int
	Get(i int) string
	All() iter.Seq2[int, string]
	Slice() []string
}

// StringList is a copy-on-write list of strings. A list is either owned by
// one message, which may mutate it in place, or shared, in which case every
// mutator copies first. Mutators return the list the caller must keep:
//
//	x.tags_ = x.tags_.Append("a")
//
// A nil *StringList behaves as the shared empty list.
type StringList struct {
	values []string
	shared atomic.Bool
}

var emptyStringList = func() *StringList {
	l := &StringList{}
	l.shared.Store(true)
	return l
}()

// EmptyStringList returns the shared empty list. It is never mutated.
func EmptyStringList() *StringList {
	return emptyStringList
}

// NewStringList returns an empty list owned by the caller.
func NewStringList() *StringList {
	return &StringList{}
}

// Untouched reports whether l is still the shared empty list.
func (l *StringList) Untouched() bool {
	return l == nil || l == emptyStringList
}

// Shared reports whether mutators must copy l first.
func (l *StringList) Shared() bool {
	return l == nil || l.shared.Load()
}

// Freeze marks l shared and returns it. A frozen list can be referenced by
// several messages.
func (l *StringList) Freeze() *StringList {
	if l == nil {
		return emptyStringList
	}
	l.shared.Store(true)
	return l
}

func (l *StringList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.values)
}

// Get returns the element at i. It panics if i is out of range.
func (l *StringList) Get(i int) string {
	return l.values[i]
}

// Raw returns the element at i without validation, for serialization.
func (l *StringList) Raw(i int) string {
	return l.values[i]
}

// Slice returns a copy of the elements.
func (l *StringList) Slice() []string {
	if l == nil {
		return nil
	}
	return slices.Clone(l.values)
}

func (l *StringList) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if l == nil {
			return
		}
		for i, v := range l.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (l *StringList) owned(extra int) *StringList {
	if !l.Shared() {
		return l
	}
	out := &StringList{values: make([]string, 0, l.Len()+extra)}
	if l != nil {
		out.values = append(out.values, l.values...)
	}
	return out
}

// Set replaces the element at i. It panics if i is out of range.
func (l *StringList) Set(i int, v string) *StringList {
	if i < 0 || i >= l.Len() {
		panic("runtime: StringList index out of range")
	}
	out := l.owned(0)
	out.values[i] = v
	return out
}

// Append adds vs at the end.
func (l *StringList) Append(vs ...string) *StringList {
	if len(vs) == 0 {
		return l
	}
	out := l.owned(len(vs))
	out.values = append(out.values, vs...)
	return out
}

// AppendList adds the elements of other at the end.
func (l *StringList) AppendList(other *StringList) *StringList {
	if other.Len() == 0 {
		return l
	}
	return l.Append(other.values...)
}

// Equal compares element-wise, in order.
func (l *StringList) Equal(other *StringList) bool {
	if l.Len() != other.Len() {
		return false
	}
	if l.Len() == 0 {
		return true
	}
	return slices.Equal(l.values, other.values)
}

// Hash combines the element hashes in order.
func (l *StringList) Hash() uint64 {
	var h uint64 = 1
	for _, v := range l.All() {
		h = 31*h + HashString(v)
	}
	return h
}

// View returns a read-only view of l.
func (l *StringList) View() StringView {
	if l == nil {
		return stringView{emptyStringList}
	}
	return stringView{l}
}

type stringView struct {
	l *StringList
}

func (v stringView) Len() int                    { return v.l.Len() }
func (v stringView) Get(i int) string            { return v.l.Get(i) }
func (v stringView) All() iter.Seq2[int, string] { return v.l.All() }
func (v stringView) Slice() []string             { return v.l.Slice() }
