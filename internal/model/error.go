package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeEmptyCart       = "EMPTY_CART"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeInvalidStatus   = "INVALID_STATUS"
	ErrCodeProductInUse    = "PRODUCT_IN_USE"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation carrying a stable error code.
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

// NewValidationError creates a validation error with a field-specific message.
func NewValidationError(message string) *DomainError {
	return &DomainError{Code: ErrCodeValidation, Message: message}
}

// Common domain errors
var (
	ErrEmptyCart           = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrProductNotFound     = NewDomainError(ErrCodeNotFound, "Product not found")
	ErrCartItemNotFound    = NewDomainError(ErrCodeNotFound, "Cart item not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrWishlistNotFound    = NewDomainError(ErrCodeNotFound, "Wishlist item not found")
	ErrUserNotFound        = NewDomainError(ErrCodeNotFound, "User not found")
	ErrInvalidCredentials  = NewDomainError(ErrCodeUnauthorised, "Invalid username or password")
	ErrInvalidRefreshToken = NewDomainError(ErrCodeUnauthorised, "Invalid or expired refresh token")
	ErrUsernameTaken       = NewDomainError(ErrCodeConflict, "Username is already taken")
	ErrEmailTaken          = NewDomainError(ErrCodeConflict, "Email is already registered")
	ErrInvalidOrderStatus  = NewDomainError(ErrCodeInvalidStatus, "Invalid order status")
	ErrProductInUse        = NewDomainError(ErrCodeProductInUse, "Product is referenced by existing orders")
)
