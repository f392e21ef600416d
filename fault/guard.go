package fault

import (
	"errors"

	"github.com/routekit/routekit/jsonval"
)

// Guard is the protected-call combinator every exposed operation runs its
// logic through. It converts a panic into an Exception-coded Error, coerces
// any non-fault error into one, and substitutes the caller's sentinel for
// the result on every failure path. The sentinel alone carries no meaning;
// callers must check the returned error.
func Guard[T any](sentinel T, fn func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = sentinel
			err = Newf(Exception, "%v", r)
		}
	}()
	v, ferr := fn()
	if ferr != nil {
		return sentinel, Coerce(ferr)
	}
	return v, nil
}

// Coerce ensures err is a *Error. Faults pass through untouched; anything
// else becomes an Exception carrying the original description.
func Coerce(err error) error {
	if err == nil {
		return nil
	}
	var f *Error
	if errors.As(err, &f) {
		return f
	}
	return New(Exception, err.Error())
}

// FromDocument interprets the result document of a failed engine call. A
// document shaped like {code: String, message: String} yields an Error
// copying those fields, with an empty code defaulting to Unknown. Any other
// shape yields the service-specific fallback code. Successful calls and
// failed calls share one document representation, which is what makes this
// attempt-and-fall-back possible.
func FromDocument(doc jsonval.Value, fallback Code) *Error {
	obj, ok := doc.Object()
	if !ok {
		return Newf(fallback, "%s service failed", fallback)
	}
	codeVal, _ := obj.Get("code")
	msgVal, _ := obj.Get("message")
	code, codeOK := codeVal.Str()
	message, msgOK := msgVal.Str()
	if !codeOK || !msgOK {
		return Newf(fallback, "%s service failed", fallback)
	}
	if code == "" {
		code = string(Unknown)
	}
	return New(Code(code), message)
}
