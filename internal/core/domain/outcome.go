package domain

// Outcome is the result of processing one item in a pipeline stage.
// Exactly one of Value or Err is meaningful.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Succeeded returns a successful outcome.
func Succeeded[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

// Failed returns a failed outcome.
func Failed[T any](err error) Outcome[T] {
	return Outcome[T]{Err: err}
}

// Partitioned holds the outcomes of a stage split by success.
type Partitioned[T any] struct {
	Values   []T
	Failures []error
}

// Total returns the number of outcomes that were partitioned.
func (p Partitioned[T]) Total() int {
	return len(p.Values) + len(p.Failures)
}

// Partition splits outcomes into successes and failures in a single pass,
// preserving the relative order within each group.
func Partition[T any](outcomes []Outcome[T]) Partitioned[T] {
	p := Partitioned[T]{
		Values: make([]T, 0, len(outcomes)),
	}
	for _, o := range outcomes {
		if o.Err != nil {
			p.Failures = append(p.Failures, o.Err)
			continue
		}
		p.Values = append(p.Values, o.Value)
	}
	return p
}
