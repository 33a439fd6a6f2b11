package types

// Identical reports whether x and y are identical types.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}

	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	case *Func:
		if y, ok := y.(*Func); ok {
			return identicalFuncs(x, y)
		}
	}
	return false
}

func identicalFuncs(x, y *Func) bool {
	if len(x.params) != len(y.params) {
		return false
	}
	for i := range x.params {
		if !Identical(x.params[i].Type(), y.params[i].Type()) {
			return false
		}
	}
	return Identical(x.result, y.result)
}

func isKind(t Type, k BasicKind) bool {
	b, ok := t.(*Basic)
	return ok && b.kind == k
}

// IsInteger reports whether t is Integer.
func IsInteger(t Type) bool { return isKind(t, Integer) }

// IsBoolean reports whether t is Boolean.
func IsBoolean(t Type) bool { return isKind(t, Boolean) }

// IsString reports whether t is String.
func IsString(t Type) bool { return isKind(t, String) }

// IsVoid reports whether t is Void.
func IsVoid(t Type) bool { return isKind(t, Void) }

// IsValue reports whether t can be the type of a variable or an
// expression: a basic type other than Void.
func IsValue(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b.kind != Invalid && b.kind != Void
}
