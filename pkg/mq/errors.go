package mq

import "errors"

// TempError marks a handler failure that should be redelivered.
type TempError struct {
	Err error
}

func (e TempError) Error() string {
	return e.Err.Error()
}

func (e TempError) Unwrap() error {
	return e.Err
}

func (e TempError) Temporary() bool {
	return true
}

func Temporary(err error) error {
	return TempError{Err: err}
}

func IsTemporary(err error) bool {
	var te TempError
	return errors.As(err, &te) && te.Temporary()
}
