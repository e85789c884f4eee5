package mobile

import (
	goerrors "github.com/go-errors/errors"
)

// Work ist eine Arbeitseinheit ohne Argumente und Rückgabewert. gomobile
// kann keine Go-Funktionstypen binden, deshalb implementiert die Host-App
// dieses Interface.
type Work interface {
	Run()
}

// WorkFunc erlaubt es, eine gewöhnliche Funktion als Work zu übergeben.
type WorkFunc func()

func (f WorkFunc) Run() { f() }

// Options konfigurieren die Brücke.
type Options struct {
	// CaptureStack legt fest, ob der Stacktrace der Exception im Fehler
	// mitgeliefert wird. Standard ist false, damit gleiche Fehler gleiche
	// Ergebnisse liefern.
	CaptureStack bool
}

// Outcome ist das Ergebnis eines Aufrufs. Error ist genau dann gesetzt,
// wenn Succeeded false ist.
type Outcome struct {
	Succeeded bool
	Error     *NativeError
}

// Err liefert nil bei Erfolg, sonst den NativeError.
func (o *Outcome) Err() error {
	if o == nil || o.Error == nil {
		return nil
	}
	return o.Error
}

// Bridge führt Arbeitseinheiten aus und wandelt dabei ausgelöste
// Exceptions in NativeError-Werte um. Eine Bridge hält keinen Zustand
// zwischen Aufrufen und darf parallel genutzt werden.
type Bridge struct {
	opts Options
}

// NewBridge erzeugt eine Bridge. Ohne Optionen wird kein Stacktrace erfasst.
func NewBridge(opts *Options) *Bridge {
	if opts == nil {
		return &Bridge{}
	}
	return &Bridge{opts: *opts}
}

var defaultBridge = NewBridge(nil)

// RunWork führt work mit der Standard-Bridge aus.
func RunWork(work Work) *Outcome {
	return defaultBridge.Run(work)
}

// Catch führt fn aus und liefert nil oder einen *NativeError.
func Catch(fn func()) error {
	return defaultBridge.Run(WorkFunc(fn)).Err()
}

// Run führt work genau einmal synchron auf der aufrufenden Goroutine aus.
// Eine dabei ausgelöste Exception wird abgefangen und nicht erneut
// ausgelöst; Seiteneffekte, die work bis dahin hatte, bleiben bestehen.
func (b *Bridge) Run(work Work) (outcome *Outcome) {
	if isNilWork(work) {
		return &Outcome{Error: &NativeError{
			Code:   ErrInvalidArguments,
			Name:   NameInvalidArgument,
			Reason: "work must not be nil",
		}}
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			outcome = &Outcome{Error: b.translatePanic(recovered)}
		}
	}()

	work.Run()
	return &Outcome{Succeeded: true}
}

func isNilWork(work Work) bool {
	if work == nil {
		return true
	}
	fn, ok := work.(WorkFunc)
	return ok && fn == nil
}

func (b *Bridge) translatePanic(recovered any) *NativeError {
	name, reason, userInfo, cause := classifySafe(recovered)
	nativeErr := &NativeError{
		Code:     ErrRuntime,
		Name:     name,
		Reason:   reason,
		UserInfo: encodeUserInfo(userInfo),
		cause:    cause,
	}
	if b.opts.CaptureStack {
		nativeErr.Stack = string(goerrors.Wrap(cause, 1).Stack())
	}
	return nativeErr
}
