package collkit

type eachFunc[T any] interface {
	func(T) | func(T) error
}

func toEachFunc[T any, FN eachFunc[T]](fn FN) func(T) error {
	switch fn := any(fn).(type) {
	case func(T):
		return func(v T) error {
			fn(v)
			return nil
		}
	case func(T) error:
		return fn
	default:
		panic("unexpected")
	}
}

type predicateFunc[T any] interface {
	func(T) bool | func(T) (bool, error)
}

func toPredicateFunc[T any, FN predicateFunc[T]](fn FN) func(T) (bool, error) {
	switch fn := any(fn).(type) {
	case func(T) bool:
		return func(v T) (bool, error) {
			return fn(v), nil
		}
	case func(T) (bool, error):
		return fn
	default:
		panic("unexpected")
	}
}

type mapFunc[O, I any] interface {
	func(I) O | func(I) (O, error)
}

func toMapFunc[O, I any, MF mapFunc[O, I]](m MF) func(I) (O, error) {
	switch fn := any(m).(type) {
	case func(I) O:
		return func(i I) (O, error) {
			return fn(i), nil
		}
	case func(I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}

type reduceFunc[O, I any] interface {
	func(O, I) O | func(O, I) (O, error)
}

func toReduceFunc[O, I any, FN reduceFunc[O, I]](m FN) func(O, I) (O, error) {
	switch fn := any(m).(type) {
	case func(O, I) O:
		return func(o O, i I) (O, error) {
			return fn(o, i), nil
		}
	case func(O, I) (O, error):
		return fn
	default:
		panic("unexpected")
	}
}
