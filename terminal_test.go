package costreams

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestEachVisitsElementsInOrder(t *testing.T) {
	is := is.New(t)

	seen := []int{}
	err := Each(Of(1, 2, 3, 4, 5), func(elem int) error {
		seen = append(seen, elem)
		return nil
	})

	is.NoErr(err)
	is.Equal(seen, []int{1, 2, 3, 4, 5})
}

func TestEachOnEmptyStream(t *testing.T) {
	is := is.New(t)

	err := Each(Empty[int](), func(int) error {
		is.Fail() // action must not be called
		return nil
	})

	is.NoErr(err)
}

func TestEachActionErrorTearsDownPipeline(t *testing.T) {
	is := is.New(t)

	cc := &closeCounting[int]{inner: Of(1, 2, 3).Producer()}

	seen := []int{}
	err := Each(FromProducer[int](cc), func(elem int) error {
		seen = append(seen, elem)

		if elem == 2 {
			return errBoom
		}

		return nil
	})

	is.True(errors.Is(err, errBoom))
	is.Equal(seen, []int{1, 2})
	is.Equal(cc.closes, 1)
}

func TestReduceEmptyStream(t *testing.T) {
	is := is.New(t)

	result, err := Reduce(Empty[int](), func(a int, b int) (int, error) {
		return a + b, nil
	})

	is.NoErr(err)
	is.True(!result.Exists())
}

func TestReduce(t *testing.T) {
	is := is.New(t)

	result, err := Reduce(Of(1, 2, 3), func(a int, b int) (int, error) {
		return a + b, nil
	})

	is.NoErr(err)
	is.Equal(result.Get(), 6)
}

func TestFoldEmptyStreamReturnsIdentity(t *testing.T) {
	is := is.New(t)

	got, err := Fold(Empty[int](), 0, func(acc int, elem int) (int, error) {
		return acc + elem, nil
	})

	is.NoErr(err)
	is.Equal(got, 0)
}

func TestFold(t *testing.T) {
	is := is.New(t)

	got, err := Fold(Of(1, 2, 3), 0, func(acc int, elem int) (int, error) {
		return acc + elem, nil
	})

	is.NoErr(err)
	is.Equal(got, 6)
}

func TestCount(t *testing.T) {
	is := is.New(t)

	count, err := Count(Of(1, 2, 3, 4))
	is.NoErr(err)
	is.Equal(count, 4)
}

func TestAnyMatchShortCircuits(t *testing.T) {
	is := is.New(t)

	cc := &closeCounting[int]{inner: Of(1, 2, 3, 4, 5).Producer()}

	pulls := 0
	match, err := AnyMatch(FromProducer[int](cc), func(elem int) (bool, error) {
		pulls++
		return elem == 2, nil
	})

	is.NoErr(err)
	is.True(match)
	is.Equal(pulls, 2)
	is.Equal(cc.closes, 1)
}

func TestAnyMatchNoMatch(t *testing.T) {
	is := is.New(t)

	match, err := AnyMatch(Of(1, 3, 5), func(elem int) (bool, error) {
		return elem%2 == 0, nil
	})

	is.NoErr(err)
	is.True(!match)
}

func TestAllMatch(t *testing.T) {
	is := is.New(t)

	match, err := AllMatch(Of(2, 4, 6), func(elem int) (bool, error) {
		return elem%2 == 0, nil
	})

	is.NoErr(err)
	is.True(match)
}

func TestAllMatchShortCircuits(t *testing.T) {
	is := is.New(t)

	cc := &closeCounting[int]{inner: Of(2, 3, 4).Producer()}

	match, err := AllMatch(FromProducer[int](cc), func(elem int) (bool, error) {
		return elem%2 == 0, nil
	})

	is.NoErr(err)
	is.True(!match)
	is.Equal(cc.closes, 1)
}
