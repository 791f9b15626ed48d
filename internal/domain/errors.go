package domain

import "errors"

var (
	ErrMealNotFound  = errors.New("meal not found")
	ErrEventNotFound = errors.New("decision event not found")
	ErrItemNotFound  = errors.New("inventory item not found")
)
