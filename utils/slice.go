// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utils

func Filter[T any](s []T, f func(T) bool) []T {
	r := make([]T, 0, len(s))
	for _, v := range s {
		if f(v) {
			r = append(r, v)
		}
	}
	return r
}

func Map[T, U any](s []T, f func(T) U) []U {
	r := make([]U, len(s))
	for i, v := range s {
		r[i] = f(v)
	}
	return r
}

func Find[T any](s []T, f func(T) bool) (T, bool) {
	for _, v := range s {
		if f(v) {
			return v, true
		}
	}
	var t T
	return t, false
}

func Count[T any](s []T, f func(T) bool) int {
	n := 0
	for _, v := range s {
		if f(v) {
			n++
		}
	}
	return n
}

// CountBy groups the elements by key and returns the group sizes.
func CountBy[T any, K comparable](s []T, key func(T) K) map[K]int {
	res := make(map[K]int)
	for _, v := range s {
		res[key(v)]++
	}
	return res
}

// IndexBy builds a lookup map. Later elements win on duplicate keys.
func IndexBy[T any, K comparable](s []T, key func(T) K) map[K]T {
	res := make(map[K]T, len(s))
	for _, v := range s {
		res[key(v)] = v
	}
	return res
}

// Upsert replaces the element with the same key or appends it.
func Upsert[T any, K comparable](s []T, item T, key func(T) K) []T {
	k := key(item)
	for i := range s {
		if key(s[i]) == k {
			s[i] = item
			return s
		}
	}
	return append(s, item)
}
