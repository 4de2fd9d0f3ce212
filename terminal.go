package costreams

import "errors"

// Each pulls s to exhaustion, calling action on each element in order.
// If a pull or action fails, the pipeline is torn down before the error is
// returned.
func Each[T any](s *Stream[T], action func(T) error) error {
	for {
		value, err := s.producer.Produce()
		if err != nil {
			return errors.Join(err, s.Close())
		}

		if !value.Exists() {
			return nil
		}

		if err := action(value.Get()); err != nil {
			return errors.Join(err, s.Close())
		}
	}
}

// Reduce pulls s to exhaustion, combining elements pairwise left to right
// with acc. It returns an absent Option if s produced no elements; there is
// no seed.
func Reduce[T any](s *Stream[T], acc func(T, T) (T, error)) (Option[T], error) {
	result := None[T]()

	for {
		value, err := s.producer.Produce()
		if err != nil {
			return None[T](), errors.Join(err, s.Close())
		}

		if !value.Exists() {
			return result, nil
		}

		if !result.Exists() {
			result = value
			continue
		}

		combined, err := acc(result.Get(), value.Get())
		if err != nil {
			return None[T](), errors.Join(err, s.Close())
		}

		result = Some(combined)
	}
}

// Fold pulls s to exhaustion, folding each element into the accumulator
// starting from identity. It returns identity unchanged if s produced no
// elements.
func Fold[T any, U any](s *Stream[T], identity U, acc func(U, T) (U, error)) (U, error) {
	result := identity

	for {
		value, err := s.producer.Produce()
		if err != nil {
			return result, errors.Join(err, s.Close())
		}

		if !value.Exists() {
			return result, nil
		}

		result, err = acc(result, value.Get())
		if err != nil {
			return result, errors.Join(err, s.Close())
		}
	}
}

// Count pulls s to exhaustion and returns the number of elements produced.
func Count[T any](s *Stream[T]) (int, error) {
	count := 0

	err := Each(s, func(T) error {
		count++
		return nil
	})

	return count, err
}

// AnyMatch returns true as soon as pred returns true for an element of s.
// On a match the pipeline is closed early; remaining elements are not
// pulled.
func AnyMatch[T any](s *Stream[T], pred func(T) (bool, error)) (bool, error) {
	for {
		value, err := s.producer.Produce()
		if err != nil {
			return false, errors.Join(err, s.Close())
		}

		if !value.Exists() {
			return false, nil
		}

		match, err := pred(value.Get())
		if err != nil {
			return false, errors.Join(err, s.Close())
		}

		if match {
			return true, s.Close()
		}
	}
}

// AllMatch returns true if pred returns true for every element of s.
// On the first mismatch the pipeline is closed early; remaining elements are
// not pulled.
func AllMatch[T any](s *Stream[T], pred func(T) (bool, error)) (bool, error) {
	for {
		value, err := s.producer.Produce()
		if err != nil {
			return false, errors.Join(err, s.Close())
		}

		if !value.Exists() {
			return true, nil
		}

		match, err := pred(value.Get())
		if err != nil {
			return false, errors.Join(err, s.Close())
		}

		if !match {
			return false, s.Close()
		}
	}
}
