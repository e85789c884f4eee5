package mobile

// NativeError ist der strukturierte Fehler, den die Brücke an die Host-App
// zurückgibt. Code lässt sich auf die Fehlerdomänen der nativen Seite
// abbilden, Name und Reason entsprechen Name und Grund einer nativen
// Exception.
type NativeError struct {
	Code   string
	Name   string
	Reason string
	// UserInfo enthält zusätzliche Schlüssel/Wert-Paare als JSON-Objekt
	// oder "", wenn keine vorhanden sind.
	UserInfo string
	Stack    string

	cause error
}

func (e *NativeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reason == "" {
		return e.Name
	}
	return e.Reason
}

// Unwrap liefert den ursprünglichen Go-Fehler, z. B. einen runtime.Error.
func (e *NativeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// WithContext liefert eine Kopie, deren Grund um msg ergänzt ist.
func (e *NativeError) WithContext(msg string) *NativeError {
	if e == nil {
		return nil
	}
	cp := *e
	if msg != "" {
		cp.Reason = msg + ": " + e.Error()
	}
	return &cp
}

const (
	// ErrRuntime markiert eine abgefangene Laufzeit-Exception (panic).
	ErrRuntime = "runtime-exception"
	// ErrInvalidArguments signalisiert ungültige Eingaben.
	ErrInvalidArguments = "invalid-arguments"
)
