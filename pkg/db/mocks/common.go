// this package provide "mock" implementation of database for testing.
//
// Each mock has `Impl` (functions called by methods) and `Calls` (arguments of method calls).
// Methods without Impl panic.
package mocks

import "errors"

type CallLog[T any] []T

func (l CallLog[T]) Times() uint {
	return uint(len(l))
}

var errNotImplemented = errors.New("[MOCK] not implemented")
