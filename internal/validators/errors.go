package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyTitle        = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title is too long")
	ErrInvalidVersion    = errors.New("invalid version")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrTooManyTags       = errors.New("too many tags")
	ErrTagTooLong        = errors.New("tag is too long")
	ErrEmptyContent      = errors.New("content is required")
	ErrContentTooLong    = errors.New("content is too long")
	ErrEmptyUserID       = errors.New("user id is required")
	ErrEmptyUserIDs      = errors.New("user ids list cannot be empty")
	ErrEmptyFieldPatches = errors.New("field patches list cannot be empty")
	ErrDuplicateSlotKey  = errors.New("slot key appears more than once")
	ErrEmptyLabel        = errors.New("enabled field needs a label")
)
