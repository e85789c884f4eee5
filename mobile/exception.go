package mobile

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Namen der Exceptions, in die abgefangene Werte eingeordnet werden.
const (
	NameGeneric         = "GenericException"
	NameRange           = "RangeException"
	NameNilPointer      = "NilPointerException"
	NameTypeCast        = "TypeCastException"
	NameRuntime         = "RuntimeException"
	NameError           = "ErrorException"
	NamePanic           = "PanicException"
	NameInvalidArgument = "InvalidArgumentException"
)

var errNilException = errors.New("nil exception")

// Exception ist ein Panic-Wert mit Name, Grund und optionalen Zusatzdaten.
// Go-Code, der bewusst eine Exception auslösen will, nutzt Raise.
type Exception struct {
	Name     string
	Reason   string
	UserInfo map[string]string
}

func (e *Exception) Error() string {
	if e == nil {
		return NameGeneric
	}
	if e.Reason == "" {
		return e.name()
	}
	return e.Reason
}

func (e *Exception) name() string {
	if e == nil || e.Name == "" {
		return NameGeneric
	}
	return e.Name
}

// Raise löst eine Exception mit dem angegebenen Namen und Grund aus.
// Nur für Go-Code innerhalb einer Work gedacht: ruft die Host-App Raise
// direkt über die Bindung auf, gibt es keine Bridge, die die Exception
// abfängt, und die App stürzt ab.
func Raise(name, reason string) {
	panic(&Exception{Name: name, Reason: reason})
}

// Raisef wie Raise, mit formatiertem Grund.
func Raisef(name, format string, args ...any) {
	panic(&Exception{Name: name, Reason: fmt.Sprintf(format, args...)})
}

// RaiseInfo löst eine Exception mit zusätzlichen Schlüssel/Wert-Paaren aus.
func RaiseInfo(name, reason string, userInfo map[string]string) {
	panic(&Exception{Name: name, Reason: reason, UserInfo: userInfo})
}

// classifySafe wie classify, fängt aber Exceptions aus Methoden des
// abgefangenen Werts (z. B. Error() auf einem typisierten nil) ab.
func classifySafe(recovered any) (name, reason string, userInfo map[string]string, cause error) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("%v", recovered)
			name, reason, userInfo, cause = NameRuntime, msg, nil, errors.New(msg)
		}
	}()
	return classify(recovered)
}

// classify ordnet einen abgefangenen Wert einem Exception-Namen zu und
// liefert Grund, Zusatzdaten und den zugrundeliegenden Fehler.
func classify(recovered any) (name, reason string, userInfo map[string]string, cause error) {
	if exc, ok := recovered.(Exception); ok {
		recovered = &exc
	}

	switch v := recovered.(type) {
	case *Exception:
		if v == nil {
			return NameGeneric, "", nil, errNilException
		}
		return v.name(), v.Reason, v.UserInfo, v
	case error:
		var exc *Exception
		if errors.As(v, &exc) {
			return exc.name(), v.Error(), exc.UserInfo, v
		}
		var typeErr *runtime.TypeAssertionError
		if errors.As(v, &typeErr) {
			return NameTypeCast, v.Error(), nil, v
		}
		var rtErr runtime.Error
		if errors.As(v, &rtErr) {
			return runtimeName(rtErr), v.Error(), nil, v
		}
		return NameError, v.Error(), nil, v
	case string:
		return NamePanic, v, nil, errors.New(v)
	default:
		msg := fmt.Sprint(v)
		return NamePanic, msg, nil, errors.New(msg)
	}
}

func runtimeName(err runtime.Error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "index out of range"),
		strings.Contains(msg, "slice bounds out of range"):
		return NameRange
	case strings.Contains(msg, "nil pointer dereference"):
		return NameNilPointer
	default:
		return NameRuntime
	}
}

func encodeUserInfo(info map[string]string) string {
	if len(info) == 0 {
		return ""
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return ""
	}
	return string(raw)
}
