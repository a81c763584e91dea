// Package pod moves plain-old-data values across the process.Memory boundary.
//
// A POD type has a fixed size and holds no Go-managed references: no
// pointers, strings, slices, maps, interfaces, funcs or channels, at any
// depth. Values are copied byte for byte in host layout, so struct fields
// must be laid out exactly like the foreign record they mirror.
package pod

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"hexbot/process"
)

var (
	// ErrNotPOD is returned for types that contain Go references.
	ErrNotPOD = errors.New("type is not plain old data")

	// ErrZeroSize is returned for types that occupy no memory.
	ErrZeroSize = errors.New("type has zero size")
)

func SizeOf[T any]() process.ProcessMemorySize {
	var t T
	return process.ProcessMemorySize(unsafe.Sizeof(t))
}

// Check reports whether T may be used with ReadT, WriteT and ReadSliceT.
func Check[T any]() error {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if typeHasPointers(rt) {
		return fmt.Errorf("%w: %s", ErrNotPOD, rt)
	}
	if rt.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrZeroSize, rt)
	}
	return nil
}

// ReadT reads exactly SizeOf[T]() bytes at addr.
func ReadT[T any](mem process.Memory, addr process.ProcessMemoryAddress) (T, error) {
	var t T
	if err := Check[T](); err != nil {
		return t, err
	}

	if err := mem.ReadMemoryInto(addr, view(&t)); err != nil {
		return t, fmt.Errorf("ReadT %T at %s: %w", t, addr.ToString(), err)
	}
	return t, nil
}

// WriteT writes exactly SizeOf[T]() bytes of v at addr.
func WriteT[T any](mem process.Memory, addr process.ProcessMemoryAddress, v T) error {
	if err := Check[T](); err != nil {
		return err
	}

	if err := mem.WriteMemory(addr, Bytes(v)); err != nil {
		return fmt.Errorf("WriteT %T at %s: %w", v, addr.ToString(), err)
	}
	return nil
}

// ReadSliceT reads count consecutive T records starting at addr in a single
// transfer straight into the returned slice.
func ReadSliceT[T any](mem process.Memory, addr process.ProcessMemoryAddress, count int) ([]T, error) {
	if count < 0 {
		return nil, errors.New("ReadSliceT: count must be positive")
	}
	if err := Check[T](); err != nil {
		return nil, err
	}

	result := make([]T, count)
	if count == 0 {
		return result, nil
	}

	size := int(SizeOf[T]())
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&result[0])), size*count)
	if err := mem.ReadMemoryInto(addr, raw); err != nil {
		return nil, fmt.Errorf("ReadSliceT %d x %T at %s: %w", count, result[0], addr.ToString(), err)
	}

	return result, nil
}

// Bytes returns a copy of the in-memory layout of v.
func Bytes[T any](v T) []byte {
	src := view(&v)
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// FromBytes copies the first SizeOf[T]() bytes of data into a new T.
func FromBytes[T any](data []byte) (T, error) {
	var t T
	if err := Check[T](); err != nil {
		return t, err
	}

	dst := view(&t)
	if len(data) < len(dst) {
		return t, fmt.Errorf("FromBytes: buffer too small: %d < %d", len(data), len(dst))
	}
	copy(dst, data)
	return t, nil
}

// view aliases the memory of *p as a byte slice.
func view[T any](p *T) []byte {
	size := int(unsafe.Sizeof(*p))
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), size)
}

func typeHasPointers(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.String, reflect.Chan:
		return true
	case reflect.Array:
		return typeHasPointers(rt.Elem())
	case reflect.Struct:
		for i := 0; i < rt.NumField(); i++ {
			if typeHasPointers(rt.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// bool, ints, uints, floats, complex, uintptr
		return false
	}
}
