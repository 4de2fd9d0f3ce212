package costreams

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestSomeHoldsValue(t *testing.T) {
	is := is.New(t)

	o := Some(42)

	is.True(o.Exists())
	is.Equal(o.Get(), 42)
	is.Equal(o.GetOr(7), 42)
}

func TestNoneIsAbsent(t *testing.T) {
	is := is.New(t)

	o := None[int]()

	is.True(!o.Exists())
	is.Equal(o.GetOr(7), 7)
}

func TestGetPanicsOnNone(t *testing.T) {
	is := is.New(t)

	defer func() {
		is.Equal(recover(), ErrNoValue)
	}()

	None[int]().Get()
}

func TestSomeNilIsNotNone(t *testing.T) {
	is := is.New(t)

	var p *int

	is.True(Some(p).Exists())
	is.Equal(Some(p).Get(), (*int)(nil))
	is.True(!None[*int]().Exists())
}

func TestOrElseIsLazy(t *testing.T) {
	is := is.New(t)

	called := false
	alt := func() Option[int] {
		called = true
		return Some(7)
	}

	is.Equal(Some(1).OrElse(alt), Some(1))
	is.True(!called)

	is.Equal(None[int]().OrElse(alt), Some(7))
	is.True(called)
}

func TestOptionFilter(t *testing.T) {
	is := is.New(t)

	even := func(v int) bool { return v%2 == 0 }

	is.Equal(Some(2).Filter(even), Some(2))
	is.Equal(Some(3).Filter(even), None[int]())
	is.Equal(None[int]().Filter(even), None[int]())
}

func TestMapOption(t *testing.T) {
	is := is.New(t)

	is.Equal(MapOption(Some(2), strconv.Itoa), Some("2"))

	called := false
	is.Equal(MapOption(None[int](), func(v int) string {
		called = true
		return strconv.Itoa(v)
	}), None[string]())
	is.True(!called)
}

func TestFlatMapOption(t *testing.T) {
	is := is.New(t)

	half := func(v int) Option[int] {
		if v%2 != 0 {
			return None[int]()
		}

		return Some(v / 2)
	}

	is.Equal(FlatMapOption(Some(4), half), Some(2))
	is.Equal(FlatMapOption(Some(3), half), None[int]())
	is.Equal(FlatMapOption(None[int](), half), None[int]())
}

func TestCombineOption(t *testing.T) {
	is := is.New(t)

	add := func(a int, b int) int { return a + b }

	is.Equal(CombineOption(Some(1), Some(2), add), Some(3))

	called := false
	spy := func(a int, b int) int {
		called = true
		return a + b
	}

	is.Equal(CombineOption(Some(1), None[int](), spy), None[int]())
	is.Equal(CombineOption(None[int](), Some(2), spy), None[int]())
	is.True(!called)
}

func TestAccept(t *testing.T) {
	is := is.New(t)

	seen := []int{}
	action := func(v int) { seen = append(seen, v) }

	Some(1).Accept(action)
	None[int]().Accept(action)

	is.Equal(seen, []int{1})
}
