package requirement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/requirement"
)

func TestOrdering(t *testing.T) {
	two := requirement.Ptr(2)

	t.Run("Lt", func(t *testing.T) {
		p := requirement.Lt(two)
		assert.Equal(t, "Must be less than 2", p.String())
		assert.True(t, p.Test(requirement.Ptr(1)))
		assert.False(t, p.Test(requirement.Ptr(2)))
		assert.False(t, p.Test(requirement.Ptr(3)))
	})

	t.Run("Le", func(t *testing.T) {
		p := requirement.Le(two)
		assert.Equal(t, "Must be less than or equal to 2", p.String())
		assert.True(t, p.Test(requirement.Ptr(1)))
		assert.True(t, p.Test(requirement.Ptr(2)))
		assert.False(t, p.Test(requirement.Ptr(3)))
	})

	t.Run("Gt", func(t *testing.T) {
		p := requirement.Gt(two)
		assert.Equal(t, "Must be greater than 2", p.String())
		assert.False(t, p.Test(requirement.Ptr(1)))
		assert.False(t, p.Test(requirement.Ptr(2)))
		assert.True(t, p.Test(requirement.Ptr(3)))
	})

	t.Run("Ge", func(t *testing.T) {
		p := requirement.Ge(two)
		assert.Equal(t, "Must be greater than or equal to 2", p.String())
		assert.False(t, p.Test(requirement.Ptr(1)))
		assert.True(t, p.Test(requirement.Ptr(2)))
		assert.True(t, p.Test(requirement.Ptr(3)))
	})

	t.Run("Eq", func(t *testing.T) {
		p := requirement.Eq(two)
		assert.Equal(t, "Must be equal to 2", p.String())
		assert.False(t, p.Test(requirement.Ptr(1)))
		assert.True(t, p.Test(requirement.Ptr(2)))
		assert.False(t, p.Test(requirement.Ptr(3)))
	})

	t.Run("Ne", func(t *testing.T) {
		p := requirement.Ne(two)
		assert.Equal(t, "Must be not equal to 2", p.String())
		assert.True(t, p.Test(requirement.Ptr(1)))
		assert.False(t, p.Test(requirement.Ptr(2)))
		assert.True(t, p.Test(requirement.Ptr(3)))
	})
}

// Absent values sort strictly below every present value, and two absent
// values compare equal, across all six operators.
func TestOrderingWithAbsentValues(t *testing.T) {
	two := requirement.Ptr(2)

	t.Run("absent tested value", func(t *testing.T) {
		assert.True(t, requirement.Lt(two).Test(nil))
		assert.True(t, requirement.Le(two).Test(nil))
		assert.False(t, requirement.Gt(two).Test(nil))
		assert.False(t, requirement.Ge(two).Test(nil))
		assert.False(t, requirement.Eq(two).Test(nil))
		assert.True(t, requirement.Ne(two).Test(nil))
	})

	t.Run("absent bound", func(t *testing.T) {
		assert.False(t, requirement.Lt[int](nil).Test(requirement.Ptr(2)))
		assert.False(t, requirement.Le[int](nil).Test(requirement.Ptr(2)))
		assert.True(t, requirement.Gt[int](nil).Test(requirement.Ptr(2)))
		assert.True(t, requirement.Ge[int](nil).Test(requirement.Ptr(2)))
		assert.False(t, requirement.Eq[int](nil).Test(requirement.Ptr(2)))
		assert.True(t, requirement.Ne[int](nil).Test(requirement.Ptr(2)))
	})

	t.Run("absent on both sides compares equal", func(t *testing.T) {
		assert.False(t, requirement.Lt[int](nil).Test(nil))
		assert.True(t, requirement.Le[int](nil).Test(nil))
		assert.False(t, requirement.Gt[int](nil).Test(nil))
		assert.True(t, requirement.Ge[int](nil).Test(nil))
		assert.True(t, requirement.Eq[int](nil).Test(nil))
		assert.False(t, requirement.Ne[int](nil).Test(nil))
	})

	t.Run("absent bound renders as null", func(t *testing.T) {
		assert.Equal(t, "Must be less than null", requirement.Lt[int](nil).String())
	})
}

func TestEqualTo(t *testing.T) {
	t.Run("plain values", func(t *testing.T) {
		p := requirement.EqualTo(2)
		assert.Equal(t, "Must be equal to 2", p.String())
		assert.True(t, p.Test(2))
		assert.False(t, p.Test(3))
	})

	t.Run("slices compare element-wise", func(t *testing.T) {
		p := requirement.EqualTo([]int{1, 2})
		assert.Equal(t, "Must be equal to [1, 2]", p.String())
		assert.True(t, p.Test([]int{1, 2}))
		assert.False(t, p.Test([]int{1}))
		assert.False(t, p.Test([]int{2, 1}))
		assert.False(t, p.Test([]int{1, 2, 3}))
	})

	t.Run("nested slices compare recursively", func(t *testing.T) {
		p := requirement.EqualTo([][]string{{"a"}, {"b", "c"}})
		assert.True(t, p.Test([][]string{{"a"}, {"b", "c"}}))
		assert.False(t, p.Test([][]string{{"a"}, {"b"}}))
	})

	t.Run("two absent values are equal", func(t *testing.T) {
		p := requirement.EqualTo[[]int](nil)
		assert.Equal(t, "Must be equal to null", p.String())
		assert.True(t, p.Test(nil))
		assert.False(t, p.Test([]int{}))
	})
}

func TestSame(t *testing.T) {
	t.Run("distinct but equal slices are not the same", func(t *testing.T) {
		a := []int{1, 2}
		b := []int{1, 2}
		assert.True(t, requirement.EqualTo(b).Test(a))
		assert.False(t, requirement.Same(b).Test(a))
		assert.True(t, requirement.Same(b).Test(b))
	})

	t.Run("pointers compare by identity", func(t *testing.T) {
		x := requirement.Ptr(1)
		y := requirement.Ptr(1)
		assert.True(t, requirement.Same(x).Test(x))
		assert.False(t, requirement.Same(x).Test(y))
	})

	t.Run("two absent values are the same", func(t *testing.T) {
		p := requirement.Same[*int](nil)
		assert.Equal(t, "Must be same object as null", p.String())
		assert.True(t, p.Test(nil))
		assert.False(t, p.Test(requirement.Ptr(1)))
	})

	t.Run("plain comparable values fall back to equality", func(t *testing.T) {
		assert.True(t, requirement.Same(2).Test(2))
		assert.False(t, requirement.Same(2).Test(3))
	})
}
