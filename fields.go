package weld

import "reflect"

// fieldInfo describes one exported struct field eligible for wiring.
type fieldInfo struct {
	index int
	name  string
	typ   reflect.Type
}

// fieldCache memoizes per-type field metadata so repeated constructions of
// the same struct type skip the tag parsing and field walk. It shares the
// injector's single-resolution-in-flight assumption and is unsynchronized.
type fieldCache struct {
	fields map[reflect.Type][]fieldInfo
}

func newFieldCache() *fieldCache {
	return &fieldCache{fields: make(map[reflect.Type][]fieldInfo)}
}

// get returns the wireable fields of struct type t.
//
// Exported fields participate; unexported fields and fields tagged
// `weld:"-"` are skipped. A non-empty `weld:"name"` tag overrides the
// field's lookup name.
func (fc *fieldCache) get(t reflect.Type) []fieldInfo {
	if fields, ok := fc.fields[t]; ok {
		return fields
	}

	fields := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("weld"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, fieldInfo{index: i, name: name, typ: f.Type})
	}

	fc.fields[t] = fields
	return fields
}
