package domain

import "errors"

var (
	ErrInvalidAdherentName  = errors.New("invalid adherent name")
	ErrInvalidAdherentEmail = errors.New("invalid adherent email")
	ErrAdherentNotFound     = errors.New("adherent not found")
	ErrDuplicateEmail       = errors.New("adherent with this email already exists")

	ErrInvalidProductName     = errors.New("invalid product name")
	ErrInvalidProductPrice    = errors.New("invalid product price")
	ErrInvalidProductCategory = errors.New("invalid product category")
	ErrProductNotFound        = errors.New("product not found")
)
