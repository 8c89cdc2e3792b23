package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeValidation      = "VALIDATION_FAILED"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeCartNotFound    = "CART_NOT_FOUND"
	ErrCodeCouponNotFound  = "COUPON_NOT_FOUND"
	ErrCodeDuplicateID     = "DUPLICATE_ID"
	ErrCodeDuplicateCode   = "DUPLICATE_CODE"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure surfaced at the service boundary.
// The pricing and cart cores never error; lookups and admin writes do.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrCartNotFound     = NewDomainError(ErrCodeCartNotFound, "Cart not found")
	ErrCouponNotFound   = NewDomainError(ErrCodeCouponNotFound, "Coupon not found")
	ErrDuplicateProduct = NewDomainError(ErrCodeDuplicateID, "A product with this ID already exists")
	ErrDuplicateCoupon  = NewDomainError(ErrCodeDuplicateCode, "A coupon with this code already exists")
)
