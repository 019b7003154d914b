package emoji

import (
	"errors"

	"github.com/npillmayer/tyse-emoji/core"
)

// Errors returned by registries and engines. Use errors.Is to test for them;
// core.Code(err) will return the corresponding core error code.
var (
	ErrNotFound         = errors.New("emoji not found")
	ErrIndexOutOfRange  = errors.New("code-point out of range")
	ErrCapacityExceeded = errors.New("emoji capacity exceeded")
	ErrInvalidName      = errors.New("invalid emoji name")
)

func errNotFound(name string) error {
	return core.WrapError(ErrNotFound, core.EMISSING, "%s", name)
}

func errOutOfRange(r rune, count int) error {
	return core.WrapError(ErrIndexOutOfRange, core.ERANGE,
		"code-point %U outside of assigned range [%U, %U)", r, Base, Base+rune(count))
}

func errCapacity(name string) error {
	return core.WrapError(ErrCapacityExceeded, core.ECAPACITY,
		"cannot register %s: all %d code-points in use", name, Capacity)
}

func errInvalidName(name, reason string) error {
	return core.WrapError(ErrInvalidName, core.EINVALID, "%s: %q", reason, name)
}
