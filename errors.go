package depot

import (
	"fmt"
	"reflect"
)

type EntityNotFoundError struct {
	Entity any
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity not found: %v", e.Entity)
}

type TableExistsError struct {
	Type reflect.Type
}

func (e TableExistsError) Error() string {
	return fmt.Sprintf("component table already created: %v", e.Type)
}

type NilFactoryError struct {
	Type reflect.Type
}

func (e NilFactoryError) Error() string {
	return fmt.Sprintf("nil storage factory for component: %v", e.Type)
}

type NilBackendError struct{}

func (e NilBackendError) Error() string {
	return "world backend is nil"
}
