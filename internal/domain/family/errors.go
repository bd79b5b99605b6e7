package family

import "errors"

var (
	ErrFamilyNotFound = errors.New("family not found")
	ErrNameTaken      = errors.New("family name already exists")
)
