package sqlq

import "reflect"

// listValues unpacks a slice or an array.
// ok is false for any other value.
func listValues(value interface{}) (values []interface{}, ok bool) {
	switch v := value.(type) {
	case []interface{}:
		return v, true
	case nil:
		return nil, false
	}
	rval := reflect.ValueOf(value)
	if rval.Kind() != reflect.Slice && rval.Kind() != reflect.Array {
		return nil, false
	}
	values = make([]interface{}, rval.Len())
	for i := range values {
		values[i] = rval.Index(i).Interface()
	}
	return values, true
}

// cloneSlice returns a copy of src that shares no backing array with it.
func cloneSlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src), cap(src))
	copy(dst, src)
	return dst
}
