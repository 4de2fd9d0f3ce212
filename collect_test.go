package costreams

import (
	"errors"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestCollectSlice(t *testing.T) {
	is := is.New(t)

	got, err := CollectSlice(Of(1, 2, 3))
	is.NoErr(err)
	is.Equal(got, []int{1, 2, 3})
}

func TestCollectMap(t *testing.T) {
	is := is.New(t)

	got, err := CollectMap(Of(1, 2, 2, 3),
		func(elem int) (string, error) {
			return strconv.Itoa(elem), nil
		},
		func(elem int) (int, error) {
			return elem * 10, nil
		})

	is.NoErr(err)
	is.Equal(got, map[string]int{"1": 10, "2": 20, "3": 30})
}

func TestCollectMapNoDuplicateKeys(t *testing.T) {
	is := is.New(t)

	_, err := CollectMapNoDuplicateKeys(Of(1, 2, 2),
		func(elem int) (string, error) {
			return strconv.Itoa(elem), nil
		},
		func(elem int) (int, error) {
			return elem, nil
		})

	var dke *DuplicateKeyError[int, string]
	is.True(errors.As(err, &dke))
	is.Equal(dke.Element, 2)
	is.Equal(dke.Key, "2")
}

func TestCollectGroup(t *testing.T) {
	is := is.New(t)

	got, err := CollectGroup(Of(1, 2, 3, 4, 5),
		func(elem int) (string, error) {
			if elem%2 == 0 {
				return "even", nil
			}

			return "odd", nil
		},
		func(elem int) (int, error) {
			return elem, nil
		})

	is.NoErr(err)
	is.Equal(got, map[string][]int{"odd": {1, 3, 5}, "even": {2, 4}})
}

func TestCollectPartition(t *testing.T) {
	is := is.New(t)

	got, err := CollectPartition(Of(1, 2, 3, 4, 5),
		func(elem int) (bool, error) {
			return elem%2 == 0, nil
		},
		func(elem int) (int, error) {
			return elem, nil
		})

	is.NoErr(err)
	is.Equal(got, map[bool][]int{false: {1, 3, 5}, true: {2, 4}})
}
