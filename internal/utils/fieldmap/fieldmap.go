// Package fieldmap implements declarative field correspondence tables between a local
// record type L and a remote resource type R.
//
// Remote fields are addressed through pointer-to-pointer accessors: a nil remote value means
// "absent", and copying it to the local side leaves the local field untouched.
package fieldmap

import "fmt"

// Field is one entry of a correspondence table.
type Field[L, R any] struct {
	Name     string
	ToRemote func(local *L, remote *R)
	ToLocal  func(remote *R, local *L) error
}

// Table is an ordered set of field correspondences.
type Table[L, R any] []Field[L, R]

// Scalar copies a value of the same type in both directions.
func Scalar[L, R, T any](name string, local func(*L) *T, remote func(*R) **T) Field[L, R] {
	return Field[L, R]{
		Name: name,
		ToRemote: func(l *L, r *R) {
			v := *local(l)
			*remote(r) = &v
		},
		ToLocal: func(r *R, l *L) error {
			if v := *remote(r); v != nil {
				*local(l) = *v
			}
			return nil
		},
	}
}

// Coerced copies a value whose local type T differs from the remote type U.
// toLocal may reject a remote value; the table reports it with the field name.
func Coerced[L, R, T, U any](name string, local func(*L) *T, remote func(*R) **U, toRemote func(T) U, toLocal func(U) (T, error)) Field[L, R] {
	return Field[L, R]{
		Name: name,
		ToRemote: func(l *L, r *R) {
			v := toRemote(*local(l))
			*remote(r) = &v
		},
		ToLocal: func(r *R, l *L) error {
			v := *remote(r)
			if v == nil {
				return nil
			}
			converted, err := toLocal(*v)
			if err != nil {
				return err
			}
			*local(l) = converted
			return nil
		},
	}
}

// OmitWhen returns a copy of f that ApplyToRemote skips, leaving the remote field absent,
// whenever absent reports true for the local record.
func (f Field[L, R]) OmitWhen(absent func(*L) bool) Field[L, R] {
	toRemote := f.ToRemote
	f.ToRemote = func(l *L, r *R) {
		if !absent(l) {
			toRemote(l, r)
		}
	}
	return f
}

// ApplyToRemote writes every configured field of local onto remote.
func (t Table[L, R]) ApplyToRemote(local *L, remote *R) {
	for _, f := range t {
		f.ToRemote(local, remote)
	}
}

// ApplyToLocal writes every present remote field onto local. It stops at the first
// coercion failure; fields before it have already been applied.
func (t Table[L, R]) ApplyToLocal(remote *R, local *L) error {
	for _, f := range t {
		if err := f.ToLocal(remote, local); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	return nil
}

// Names lists the remote field names in table order.
func (t Table[L, R]) Names() []string {
	names := make([]string, len(t))
	for i, f := range t {
		names[i] = f.Name
	}
	return names
}
