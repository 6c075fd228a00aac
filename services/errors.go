package services

import "errors"

// หนึ่ง failure ต่อหนึ่ง sentinel — controller map เป็น status เดียวเสมอ
var (
	ErrForbiddenRole         = errors.New("forbidden for this role")
	ErrNotFound              = errors.New("not found") // ไม่มีจริงหรือมองไม่เห็น แยกไม่ได้โดยตั้งใจ
	ErrEmptyCart             = errors.New("cart is empty")
	ErrInvalidQuantity       = errors.New("quantity must be greater than zero")
	ErrUnknownMenuItem       = errors.New("unknown menu item")
	ErrInvalidStatus         = errors.New("status must be 0 or 1")
	ErrMissingField          = errors.New("status is required")
	ErrPartialUpdateRequired = errors.New("use PATCH for status update")
	ErrUnknownUser           = errors.New("unknown user")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
