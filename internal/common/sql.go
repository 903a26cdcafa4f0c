package common

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

// GetFieldValues returns the field values of a struct in declaration order,
// used to feed positional args for bulk inserts.
func GetFieldValues(i interface{}) ([]interface{}, error) {
	entities := reflect.ValueOf(i)
	if entities.Kind() != reflect.Struct {
		return nil, errors.New("invalid entity for get field values")
	}

	values := make([]interface{}, entities.NumField())
	for i := 0; i < entities.NumField(); i++ {
		v := entities.Field(i).Interface()
		values[i] = v
	}
	return values, nil
}

// ReplaceSQL rewrites ? placeholders into $n for postgres.
func ReplaceSQL(old, searchPattern string) string {
	tmpCount := strings.Count(old, searchPattern)
	for m := 1; m <= tmpCount; m++ {
		old = strings.Replace(old, searchPattern, "$"+strconv.Itoa(m), 1)
	}
	return old
}
