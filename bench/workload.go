package bench

import (
	"iter"
	"math/rand"
	"strconv"
)

// Op is a single insertion: Value goes to position Index.
type Op[T any] struct {
	Index int
	Value T
}

// Counter is the default value source. It uses the decimal representation of
// an operation's ordinal as its value.
func Counter(i int) string {
	return strconv.Itoa(i)
}

// Workload creates n insertion operations. The i-th operation targets a
// position drawn uniformly from [0…i], i.e. it is valid for a sequence
// holding the i elements inserted before. The same seed always produces the
// same workload. values is called with the ordinal of each operation.
func Workload[T any](seed int64, n int, values func(int) T) []Op[T] {
	r := rand.New(rand.NewSource(seed))
	ops := make([]Op[T], n)
	for i := range ops {
		ops[i] = Op[T]{
			Index: r.Intn(i + 1),
			Value: values(i),
		}
	}
	return ops
}

// Apply replays ops on seq. It stops at the first failing insertion and
// returns its error.
func Apply[T any](seq Sequence[T], ops []Op[T]) error {
	for _, op := range ops {
		if err := seq.Insert(op.Index, op.Value); err != nil {
			return err
		}
	}
	return nil
}

// Equal compares two sequences element by element. If they differ, it
// returns the first position where they do (which may be the end of the
// shorter one) and false.
func Equal[T comparable](a, b Sequence[T]) (int, bool) {
	next, stop := iter.Pull(b.All())
	defer stop()
	i := 0
	for v := range a.All() {
		w, ok := next()
		if !ok || v != w {
			return i, false
		}
		i++
	}
	if _, ok := next(); ok {
		return i, false
	}
	return -1, true
}
