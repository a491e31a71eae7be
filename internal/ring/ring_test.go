package ring

import (
	"errors"
	"testing"
)

func TestNewInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -100} {
		if _, err := New[int](capacity); !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("New(%d): expected ErrInvalidCapacity, got %v", capacity, err)
		}
	}
}

func TestLenSaturates(t *testing.T) {
	for _, tc := range []struct {
		capacity, pushes, want int
	}{
		{1, 0, 0},
		{1, 1, 1},
		{1, 5, 1},
		{3, 2, 2},
		{3, 3, 3},
		{3, 10, 3},
		{8, 100, 8},
	} {
		c, err := New[int](tc.capacity)
		if err != nil {
			t.Fatalf("New(%d): %v", tc.capacity, err)
		}
		for i := 0; i < tc.pushes; i++ {
			c.Push(i)
		}
		if c.Len() != tc.want {
			t.Errorf("cap %d, %d pushes: Len()=%d, want %d", tc.capacity, tc.pushes, c.Len(), tc.want)
		}
		if c.Cap() != tc.capacity {
			t.Errorf("Cap()=%d, want %d", c.Cap(), tc.capacity)
		}
	}
}

func TestExactFillOrder(t *testing.T) {
	c, _ := New[int](5)
	for i := 0; i < 5; i++ {
		c.Push(i * 10)
	}
	if !c.Full() {
		t.Error("cache should be full after capacity pushes")
	}
	got := c.All()
	for i, v := range got {
		if v != i*10 {
			t.Errorf("All()[%d]=%d, want %d", i, v, i*10)
		}
	}
}

func TestWrapKeepsNewest(t *testing.T) {
	c, _ := New[int](3)
	for _, v := range []int{10, 20, 30, 40} {
		c.Push(v)
	}
	if c.Len() != 3 {
		t.Fatalf("Len()=%d, want 3", c.Len())
	}
	want := []int{20, 30, 40}
	got := c.All()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d]=%d, want %d", i, got[i], want[i])
		}
	}
	if v, ok := c.Get(0); !ok || v != 20 {
		t.Errorf("Get(0)=%d,%v, want 20,true", v, ok)
	}
	if v, ok := c.Get(2); !ok || v != 40 {
		t.Errorf("Get(2)=%d,%v, want 40,true", v, ok)
	}
	if _, ok := c.Get(3); ok {
		t.Error("Get(3) past the end should report absent")
	}
}

func TestCapacityOneReplaces(t *testing.T) {
	c, _ := New[int](1)
	c.Push(5)
	c.Push(9)
	got := c.All()
	if len(got) != 1 || got[0] != 9 {
		t.Errorf("All()=%v, want [9]", got)
	}
}

func TestGetOutOfRange(t *testing.T) {
	c, _ := New[string](4)
	if _, ok := c.Get(0); ok {
		t.Error("Get(0) on empty cache should report absent")
	}
	c.Push("a")
	c.Push("b")
	for _, i := range []int{-1, 2, 3, 4, 100} {
		if _, ok := c.Get(i); ok {
			t.Errorf("Get(%d) with Len()=2 should report absent", i)
		}
	}
}

func TestClear(t *testing.T) {
	c, _ := New[int](3)
	for i := 0; i < 7; i++ {
		c.Push(i)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len()=%d after Clear, want 0", c.Len())
	}
	if _, ok := c.Get(0); ok {
		t.Error("Get(0) after Clear should report absent despite stale storage")
	}
	if len(c.All()) != 0 {
		t.Error("All() after Clear should be empty")
	}

	// The cache must be fully usable again.
	c.Push(42)
	if v, ok := c.Get(0); !ok || v != 42 {
		t.Errorf("Get(0) after Clear+Push = %d,%v, want 42,true", v, ok)
	}
}

func TestValuesOrder(t *testing.T) {
	c, _ := New[int](4)
	for i := 1; i <= 6; i++ {
		c.Push(i)
	}
	want := []int{3, 4, 5, 6}
	var got []int
	for v := range c.Values() {
		got = append(got, v)
	}
	if len(got) != len(want) {
		t.Fatalf("Values() yielded %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d]=%d, want %d", i, got[i], want[i])
		}
	}
}

func TestValuesRestartable(t *testing.T) {
	c, _ := New[int](3)
	c.Push(7)
	c.Push(8)

	collect := func() []int {
		var out []int
		for v := range c.Values() {
			out = append(out, v)
		}
		return out
	}

	first := collect()
	second := collect()
	if len(first) != len(second) {
		t.Fatalf("iteration lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("iteration %d differs on restart: %d vs %d", i, first[i], second[i])
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len()=%d after iterating twice, want 2", c.Len())
	}
}

func TestValuesEarlyBreak(t *testing.T) {
	c, _ := New[int](5)
	for i := 0; i < 5; i++ {
		c.Push(i)
	}
	n := 0
	for range c.Values() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("stopped after %d values, want 2", n)
	}
	if c.Len() != 5 {
		t.Errorf("Len()=%d after partial iteration, want 5", c.Len())
	}
}

func TestLast(t *testing.T) {
	c, _ := New[int](2)
	if _, ok := c.Last(); ok {
		t.Error("Last() on empty cache should report absent")
	}
	c.Push(1)
	c.Push(2)
	c.Push(3)
	if v, ok := c.Last(); !ok || v != 3 {
		t.Errorf("Last()=%d,%v, want 3,true", v, ok)
	}
}
