// Package datastruct holds concrete containers that conform to the capability interfaces of port/collection.
package datastruct

import "iter"

// List is the common surface of the sequential containers.
type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Iter() iter.Seq[T]
	Sizer
}

type Sizer interface {
	Len() int
}
