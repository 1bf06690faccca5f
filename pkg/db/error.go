package db

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFoundErr reports whether err is a gorm record-not-found error.
func IsNotFoundErr(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
