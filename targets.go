package weld

import "reflect"

// Type returns the type token for T, for use as a binding or resolution
// target.
//
// Example:
//
//	ctx.Singleton(weld.Type[*DB](), weld.MustFunc(NewDB))
//	db, err := weld.As[*DB](in.Resolve(weld.Type[*DB]()))
func Type[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Of returns the dynamic type token of v. It is the non-generic counterpart
// of Type, handy when the value is already at hand.
func Of(v any) reflect.Type {
	return reflect.TypeOf(v)
}

// validateTarget rejects targets that can never participate in resolution:
// empty values (the ambiguous "nothing" cases) and values that cannot be
// used as map keys.
func validateTarget(target any) error {
	if target == nil {
		return InvalidTargetError{Target: target, Reason: "target cannot be empty"}
	}
	v := reflect.ValueOf(target)
	switch v.Kind() {
	case reflect.String:
		if v.Len() == 0 {
			return InvalidTargetError{Target: target, Reason: "target cannot be empty"}
		}
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		if v.IsNil() {
			return InvalidTargetError{Target: target, Reason: "target cannot be empty"}
		}
	}
	if !v.Comparable() {
		return InvalidTargetError{
			Target: target,
			Reason: "target of type " + v.Type().String() + " is not comparable",
		}
	}
	return nil
}

// targetLabel renders a target for error messages.
func targetLabel(target any) string {
	switch t := target.(type) {
	case nil:
		return "<nil>"
	case string:
		return "\"" + t + "\""
	case reflect.Type:
		return t.String()
	case *Factory:
		return t.name
	}
	return reflect.TypeOf(target).String()
}
