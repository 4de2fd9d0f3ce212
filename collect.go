package costreams

// A DuplicateKeyError reports that a key could not be added to a map because
// it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return "costreams: duplicate key"
}

// CollectSlice pulls s to exhaustion and collects its elements into a slice,
// in order.
func CollectSlice[T any](s *Stream[T]) ([]T, error) {
	return Fold(s, []T{}, func(acc []T, elem T) ([]T, error) {
		return append(acc, elem), nil
	})
}

// CollectMap pulls s to exhaustion and collects its elements into a map.
// Elements are mapped using key and value, respectively. If a key is already
// in the map, the map entry is overwritten.
func CollectMap[T any, K comparable, V any](
	s *Stream[T],
	key func(T) (K, error),
	value func(T) (V, error),
) (map[K]V, error) {
	return Fold(s, map[K]V{}, func(acc map[K]V, elem T) (map[K]V, error) {
		k, err := key(elem)
		if err != nil {
			return acc, err
		}

		v, err := value(elem)
		if err != nil {
			return acc, err
		}

		acc[k] = v

		return acc, nil
	})
}

// CollectMapNoDuplicateKeys pulls s to exhaustion and collects its elements
// into a map. Elements are mapped using key and value, respectively. If a
// key is already in the map, collection stops with a DuplicateKeyError.
func CollectMapNoDuplicateKeys[T any, K comparable, V any](
	s *Stream[T],
	key func(T) (K, error),
	value func(T) (V, error),
) (map[K]V, error) {
	return Fold(s, map[K]V{}, func(acc map[K]V, elem T) (map[K]V, error) {
		k, err := key(elem)
		if err != nil {
			return acc, err
		}

		if _, ok := acc[k]; ok {
			return acc, &DuplicateKeyError[T, K]{
				Element: elem,
				Key:     k,
			}
		}

		v, err := value(elem)
		if err != nil {
			return acc, err
		}

		acc[k] = v

		return acc, nil
	})
}

// CollectGroup pulls s to exhaustion and collects its elements into a group
// map. Elements are grouped into slices according to key.
func CollectGroup[T any, K comparable, V any](
	s *Stream[T],
	key func(T) (K, error),
	value func(T) (V, error),
) (map[K][]V, error) {
	return Fold(s, map[K][]V{}, func(acc map[K][]V, elem T) (map[K][]V, error) {
		k, err := key(elem)
		if err != nil {
			return acc, err
		}

		v, err := value(elem)
		if err != nil {
			return acc, err
		}

		acc[k] = append(acc[k], v)

		return acc, nil
	})
}

// CollectPartition pulls s to exhaustion and collects its elements into a
// partition map. Elements are grouped into slices according to pred.
func CollectPartition[T any, V any](
	s *Stream[T],
	pred func(T) (bool, error),
	value func(T) (V, error),
) (map[bool][]V, error) {
	return CollectGroup(s, pred, value)
}
