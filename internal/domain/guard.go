package domain

import (
	"fmt"
	"reflect"
	"strings"
)

// InvariantViolationError reports a list found inside a response. The product
// contract is exactly one decision, never a list of options, so this is
// always fatal to the call and never silently corrected.
type InvariantViolationError struct {
	Path string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("response invariant violated: array found at %s", e.Path)
}

// AssertNoArrays walks the response object graph and fails on the first
// slice or array found at any depth. Every response leaves the orchestrator
// through this check, including rescue and fallback paths.
func AssertNoArrays(response any) error {
	return walkForArrays(reflect.ValueOf(response), "response")
}

func walkForArrays(value reflect.Value, path string) error {
	if !value.IsValid() {
		return nil
	}

	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		return &InvariantViolationError{Path: path}
	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return nil
		}
		return walkForArrays(value.Elem(), path)
	case reflect.Map:
		iter := value.MapRange()
		for iter.Next() {
			keyPath := fmt.Sprintf("%s.%v", path, iter.Key().Interface())
			if err := walkForArrays(iter.Value(), keyPath); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
		structType := value.Type()
		for i := 0; i < structType.NumField(); i++ {
			field := structType.Field(i)
			if field.PkgPath != "" {
				// Unexported fields never serialize into the payload.
				continue
			}
			if err := walkForArrays(value.Field(i), path+"."+fieldLabel(field)); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func fieldLabel(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}

	name := strings.Split(tag, ",")[0]
	if name == "" {
		return field.Name
	}

	return name
}
