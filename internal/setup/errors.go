package setup

import (
	"errors"
	"fmt"
)

var ErrNoVolume = errors.New("storage volume must be set for the disk driver")

type UnknownStorageDriverError struct {
	Driver string
}

func (e UnknownStorageDriverError) Error() string {
	return fmt.Sprintf("unknown storage driver %q", e.Driver)
}

func NewUnknownStorageDriverError(driver string) *UnknownStorageDriverError {
	return &UnknownStorageDriverError{
		Driver: driver,
	}
}
