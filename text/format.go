package text

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// FormatIterable renders v deterministically. Slices and arrays render as
// "[a, b]", maps as "{k: v}" with entries sorted by their rendered key, and
// strings are quoted. Nested collections are rendered recursively; any
// other value uses its fmt %v form.
//
//	FormatIterable(map[string][]int{"b": {2}, "a": {1}})  // {"a": [1], "b": [2]}
func FormatIterable(v any) string {
	var b strings.Builder
	formatValue(&b, reflect.ValueOf(v))
	return b.String()
}

func formatValue(b *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		b.WriteString("<nil>")
		return
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			b.WriteString("<nil>")
			return
		}
		if v.Kind() == reflect.Interface || isCollection(v.Elem()) {
			formatValue(b, v.Elem())
			return
		}
		fmt.Fprintf(b, "%v", v.Interface())
	case reflect.String:
		fmt.Fprintf(b, "%q", v.String())
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			fmt.Fprintf(b, "%q", v.Bytes())
			return
		}
		b.WriteByte('[')
		for i := range v.Len() {
			if i > 0 {
				b.WriteString(", ")
			}
			formatValue(b, v.Index(i))
		}
		b.WriteByte(']')
	case reflect.Map:
		type entry struct{ key, value string }
		entries := make([]entry, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			var k, val strings.Builder
			formatValue(&k, iter.Key())
			formatValue(&val, iter.Value())
			entries = append(entries, entry{k.String(), val.String()})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

		b.WriteByte('{')
		for i, e := range entries {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.key)
			b.WriteString(": ")
			b.WriteString(e.value)
		}
		b.WriteByte('}')
	default:
		if v.CanInterface() {
			fmt.Fprintf(b, "%v", v.Interface())
			return
		}
		fmt.Fprintf(b, "%v", v)
	}
}

func isCollection(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}
