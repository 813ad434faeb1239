/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package abstraction holds the pieces shared by every adapter in stdseam:
// the Abstraction interface that exposes the wrapped value, the Adapter
// struct adapters embed to store it, and the helpers that convert between
// interface-typed and concrete-typed values.
package abstraction

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotAdapter is returned when a value neither is nor wraps the requested concrete type
var ErrNotAdapter = errors.New("value does not wrap the requested type")

// Abstraction is implemented by every adapter. Unwrap returns the concrete
// value the adapter forwards to.
type Abstraction[T any] interface {
	Unwrap() T
}

// Adapter stores the wrapped value. Adapters embed it to get Unwrap.
type Adapter[T any] struct {
	inner T
}

// NewAdapter creates an Adapter around inner
func NewAdapter[T any](inner T) Adapter[T] {
	return Adapter[T]{inner: inner}
}

// Unwrap returns the wrapped value
func (a Adapter[T]) Unwrap() T {
	return a.inner
}

// unwrapper matches any Abstraction regardless of its type parameter.
type unwrapper interface {
	unwrapAny() any
}

func (a Adapter[T]) unwrapAny() any {
	return a.inner
}

// ToImplementation returns the concrete T behind v.
//
// An adapter wrapping a T yields the wrapped value; a value that already is
// a T is returned as is. Nested adapters are followed until a T is found.
// The boolean is false when v is nil or wraps no T.
func ToImplementation[T any](v any) (T, bool) {
	var zero T
	for depth := 0; !IsNil(v) && depth < maxDepth; depth++ {
		if a, ok := v.(Abstraction[T]); ok {
			inner := a.Unwrap()
			if IsNil(inner) {
				return zero, false
			}
			return inner, true
		}
		if t, ok := v.(T); ok {
			return t, true
		}
		u, ok := v.(unwrapper)
		if !ok {
			return zero, false
		}
		v = u.unwrapAny()
	}
	return zero, false
}

// MustImplementation is like ToImplementation but panics when v does not
// wrap a T.
func MustImplementation[T any](v any) T {
	t, ok := ToImplementation[T](v)
	if !ok {
		panic(fmt.Errorf("%w: %T is not %s", ErrNotAdapter, v, typeName[T]()))
	}
	return t
}

// ToInterface wraps inner with wrap, returning the zero value of I when
// inner is nil. When inner already implements I it is returned unchanged
// so adapters never stack.
func ToInterface[I any, T any](inner T, wrap func(T) I) I {
	var zero I
	if IsNil(inner) {
		return zero
	}
	if i, ok := any(inner).(I); ok {
		return i
	}
	return wrap(inner)
}

// IsNil reports whether v is nil or a typed nil (pointer, map, slice, func,
// chan or interface).
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

const maxDepth = 32

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
