package console

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"

	"github.com/five82/backscroll/internal/live"
)

// Kind is the shape a logged value was classified as.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindCallable
	KindStructured
	KindAbsent
	KindOther
)

// Placeholders rendered when a value has no useful text form.
const (
	placeholderFunction  = "[function]"
	placeholderObject    = "[object]"
	placeholderUndefined = "[undefined]"
	placeholderUnknown   = "[type not found]"
	placeholderNotSignal = "[not a signal]"
	placeholderPending   = "[pending]"
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindCallable:
		return "callable"
	case KindStructured:
		return "structured"
	case KindAbsent:
		return "absent"
	default:
		return "other"
	}
}

// Classify returns the kind of v and the text the console renders for it.
// It never fails: values without a text form map to a placeholder.
func Classify(v any) (Kind, string) {
	if v == nil {
		return KindAbsent, placeholderUndefined
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return KindAbsent, placeholderUndefined
	}

	switch x := v.(type) {
	case live.Reader:
		cur, err := x.Current()
		if err != nil {
			return KindCallable, placeholderFunction
		}
		return KindCallable, scalarText(cur)
	case string:
		return KindString, x
	case []byte:
		return KindString, string(x)
	case error:
		return KindString, x.Error()
	case fmt.Stringer:
		return KindString, x.String()
	case bool:
		return KindBool, fmt.Sprint(x)
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindNumber, fmt.Sprint(v)
	case reflect.String:
		return KindString, rv.String()
	case reflect.Bool:
		return KindBool, fmt.Sprint(rv.Bool())
	case reflect.Func:
		if rv.IsNil() {
			return KindAbsent, placeholderUndefined
		}
		return KindCallable, placeholderFunction
	case reflect.Pointer, reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return KindStructured, structuredText(v)
	default:
		return KindOther, placeholderUnknown
	}
}

// scalarText formats a value read from a live source. Readers are not
// followed a second time.
func scalarText(v any) string {
	if _, ok := v.(live.Reader); ok {
		return placeholderFunction
	}
	_, text := Classify(v)
	return text
}

func structuredText(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return placeholderObject
	}
	switch string(b) {
	case "{}", "[]", "null":
		return placeholderObject
	}
	return string(b)
}
