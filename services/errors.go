// Package services holds the application services between the HTTP
// handlers and the repositories: catalog querying, order aggregation and
// the entity CRUD flows, plus the error taxonomy handlers translate into
// status codes.
package services

import "fmt"

// ValidationError reports a missing or invalid required field. The message
// names the field and is safe to return to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// ConflictError reports an operation refused because dependent records
// still reference the entity, or because the record already exists.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StoreError wraps a data-access failure. The cause is logged by the
// service; clients only see the operation name.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("Error %s", e.Op)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
