package glog

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/willibrandon/glog/core"
	"github.com/willibrandon/glog/internal/caller"
)

// CheckError is the panic value raised by a failed check. It carries
// the operands and location so recovery handlers can inspect the
// failure instead of parsing the message.
type CheckError struct {
	// Op identifies the asserted relation: "==", "!=", "<=", ">=", "<",
	// ">" for the comparison checks, "true" for Check, and "notnil" for
	// CheckNotNil.
	Op string

	// Left and Right are the checked operands. Right is nil for Check
	// and CheckNotNil.
	Left  any
	Right any

	// File and Line locate the failed check call.
	File string
	Line int

	// Message is the rendered failure message, either the default
	// describing the violated relation or the caller-supplied one.
	Message string
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	return fmt.Sprintf("%s (%s:%d)", e.Message, e.File, e.Line)
}

// IsCheckFailure reports whether err is a *CheckError. Use it on values
// obtained from recover:
//
//	if err, ok := recover().(error); ok && glog.IsCheckFailure(err) { ... }
func IsCheckFailure(err error) bool {
	var target *CheckError
	return errors.As(err, &target)
}

// IncomparableError is the panic value raised when an ordered check
// receives operands with no defined order, such as a struct and a
// string. It signals a programming error at the call site rather than
// a failed assertion.
type IncomparableError struct {
	Op    string
	Left  any
	Right any
}

// Error implements the error interface.
func (e *IncomparableError) Error() string {
	return fmt.Sprintf("incomparable operands for %s: %T and %T", e.Op, e.Left, e.Right)
}

// IsIncomparable reports whether err is an *IncomparableError.
func IsIncomparable(err error) bool {
	var target *IncomparableError
	return errors.As(err, &target)
}

// Check panics with a *CheckError if condition is false, after logging
// the failure at CriticalLevel. The optional trailing arguments replace
// the default message: a lone argument is printed as-is, a leading
// format string is expanded with the rest.
func (l *Logger) Check(condition bool, msgAndArgs ...any) {
	if condition {
		return
	}
	l.failCheck(1, "true", nil, nil, checkMessage("Check failed.", msgAndArgs))
}

// CheckEq panics with a *CheckError if a and b are not equal. Mixed
// numeric types compare by value; everything else falls back to
// reflect.DeepEqual.
func (l *Logger) CheckEq(a, b any, msgAndArgs ...any) {
	l.checkEq(1, a, b, msgAndArgs)
}

// CheckNe panics with a *CheckError if a and b are equal.
func (l *Logger) CheckNe(a, b any, msgAndArgs ...any) {
	l.checkNe(1, a, b, msgAndArgs)
}

// CheckLe panics with a *CheckError if a > b. Operands must both be
// numeric or both strings; anything else panics with
// *IncomparableError.
func (l *Logger) CheckLe(a, b any, msgAndArgs ...any) {
	l.checkOrdered(1, "<=", a, b, msgAndArgs)
}

// CheckGe panics with a *CheckError if a < b.
func (l *Logger) CheckGe(a, b any, msgAndArgs ...any) {
	l.checkOrdered(1, ">=", a, b, msgAndArgs)
}

// CheckLt panics with a *CheckError if a >= b.
func (l *Logger) CheckLt(a, b any, msgAndArgs ...any) {
	l.checkOrdered(1, "<", a, b, msgAndArgs)
}

// CheckGt panics with a *CheckError if a <= b.
func (l *Logger) CheckGt(a, b any, msgAndArgs ...any) {
	l.checkOrdered(1, ">", a, b, msgAndArgs)
}

// CheckNotNil panics with a *CheckError if v is nil, including typed
// nil pointers, maps, slices, channels, functions, and interfaces.
func (l *Logger) CheckNotNil(v any, msgAndArgs ...any) {
	if !isNil(v) {
		return
	}
	l.failCheck(1, "notnil", v, nil, checkMessage("Check failed. Object is nil.", msgAndArgs))
}

// Package-level checks assert through the default logger.

// Check panics with a *CheckError if condition is false.
func Check(condition bool, msgAndArgs ...any) {
	if condition {
		return
	}
	Default().failCheck(1, "true", nil, nil, checkMessage("Check failed.", msgAndArgs))
}

// CheckEq panics with a *CheckError if a and b are not equal.
func CheckEq(a, b any, msgAndArgs ...any) {
	Default().checkEq(1, a, b, msgAndArgs)
}

// CheckNe panics with a *CheckError if a and b are equal.
func CheckNe(a, b any, msgAndArgs ...any) {
	Default().checkNe(1, a, b, msgAndArgs)
}

// CheckLe panics with a *CheckError if a > b.
func CheckLe(a, b any, msgAndArgs ...any) {
	Default().checkOrdered(1, "<=", a, b, msgAndArgs)
}

// CheckGe panics with a *CheckError if a < b.
func CheckGe(a, b any, msgAndArgs ...any) {
	Default().checkOrdered(1, ">=", a, b, msgAndArgs)
}

// CheckLt panics with a *CheckError if a >= b.
func CheckLt(a, b any, msgAndArgs ...any) {
	Default().checkOrdered(1, "<", a, b, msgAndArgs)
}

// CheckGt panics with a *CheckError if a <= b.
func CheckGt(a, b any, msgAndArgs ...any) {
	Default().checkOrdered(1, ">", a, b, msgAndArgs)
}

// CheckNotNil panics with a *CheckError if v is nil.
func CheckNotNil(v any, msgAndArgs ...any) {
	if !isNil(v) {
		return
	}
	Default().failCheck(1, "notnil", v, nil, checkMessage("Check failed. Object is nil.", msgAndArgs))
}

func (l *Logger) checkEq(depth int, a, b any, msgAndArgs []any) {
	if checkEqual(a, b) {
		return
	}
	// The default message states the relation that was observed, not
	// the one that was asserted.
	msg := checkMessage(fmt.Sprintf("check failed: %v != %v", a, b), msgAndArgs)
	l.failCheck(depth+1, "==", a, b, msg)
}

func (l *Logger) checkNe(depth int, a, b any, msgAndArgs []any) {
	if !checkEqual(a, b) {
		return
	}
	msg := checkMessage(fmt.Sprintf("check failed: %v == %v", a, b), msgAndArgs)
	l.failCheck(depth+1, "!=", a, b, msg)
}

func (l *Logger) checkOrdered(depth int, op string, a, b any, msgAndArgs []any) {
	cmp, exact, ok := compareOrdered(a, b)
	if !ok {
		panic(&IncomparableError{Op: op, Left: a, Right: b})
	}

	var violated bool
	var relation string
	switch op {
	case "<=":
		violated, relation = exact && cmp > 0, ">"
	case ">=":
		violated, relation = exact && cmp < 0, "<"
	case "<":
		violated, relation = exact && cmp >= 0, ">="
	case ">":
		violated, relation = exact && cmp <= 0, "<="
	}
	if !violated {
		return
	}

	msg := checkMessage(fmt.Sprintf("check failed: %v %s %v", a, relation, b), msgAndArgs)
	l.failCheck(depth+1, op, a, b, msg)
}

// failCheck logs the failure at CriticalLevel and panics. The emitted
// event and the panic value share one resolved call site. The exit
// policy does not apply here; the panic is the failure signal.
func (l *Logger) failCheck(depth int, op string, left, right any, message string) {
	file, line := caller.Lookup(depth + 1 + l.callerSkip)
	if l.IsEnabled(core.CriticalLevel) {
		l.writeAt(file, line, core.CriticalLevel, message)
	}
	panic(&CheckError{
		Op:      op,
		Left:    left,
		Right:   right,
		File:    file,
		Line:    line,
		Message: message,
	})
}

// checkMessage renders the optional caller-supplied message, falling
// back to the default.
func checkMessage(def string, msgAndArgs []any) string {
	switch len(msgAndArgs) {
	case 0:
		return def
	case 1:
		return fmt.Sprint(msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		return fmt.Sprint(msgAndArgs...)
	}
}

// checkEqual compares for the equality checks: numeric values by
// promoted value, everything else by reflect.DeepEqual.
func checkEqual(a, b any) bool {
	if cmp, exact, ok := compareNumeric(a, b); ok {
		return exact && cmp == 0
	}
	return reflect.DeepEqual(a, b)
}

// compareOrdered compares operands that have a defined order: mixed
// numerics by value, strings lexically. exact is false when a NaN is
// involved, in which case no relation holds. ok is false for operand
// pairs with no defined order.
func compareOrdered(a, b any) (cmp int, exact bool, ok bool) {
	if cmp, exact, ok = compareNumeric(a, b); ok {
		return cmp, exact, true
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if a != nil && b != nil && av.Kind() == reflect.String && bv.Kind() == reflect.String {
		as, bs := av.String(), bv.String()
		switch {
		case as < bs:
			return -1, true, true
		case as > bs:
			return 1, true, true
		default:
			return 0, true, true
		}
	}

	return 0, false, false
}

// compareNumeric compares two values when both are numeric, promoting
// across int, uint, and float kinds. exact is false when a NaN makes
// the comparison meaningless.
func compareNumeric(a, b any) (cmp int, exact bool, ok bool) {
	if a == nil || b == nil {
		return 0, false, false
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	ak, bk := numKind(av), numKind(bv)
	if ak == numNone || bk == numNone {
		return 0, false, false
	}

	if ak == numFloat || bk == numFloat {
		af, bf := toFloat(av, ak), toFloat(bv, bk)
		switch {
		case af != af || bf != bf: // NaN
			return 0, false, true
		case af < bf:
			return -1, true, true
		case af > bf:
			return 1, true, true
		default:
			return 0, true, true
		}
	}

	// Integer kinds only; avoid float rounding on large values.
	switch {
	case ak == numInt && bk == numInt:
		return cmpInt64(av.Int(), bv.Int()), true, true
	case ak == numUint && bk == numUint:
		return cmpUint64(av.Uint(), bv.Uint()), true, true
	case ak == numInt:
		if av.Int() < 0 {
			return -1, true, true
		}
		return cmpUint64(uint64(av.Int()), bv.Uint()), true, true
	default:
		if bv.Int() < 0 {
			return 1, true, true
		}
		return cmpUint64(av.Uint(), uint64(bv.Int())), true, true
	}
}

type numClass int

const (
	numNone numClass = iota
	numInt
	numUint
	numFloat
)

func numKind(v reflect.Value) numClass {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numUint
	case reflect.Float32, reflect.Float64:
		return numFloat
	default:
		return numNone
	}
}

func toFloat(v reflect.Value, k numClass) float64 {
	switch k {
	case numInt:
		return float64(v.Int())
	case numUint:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// isNil reports whether v is nil, looking through typed nils.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
