package services

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the service layer. Controllers translate
// these into HTTP status codes.
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrNotOrderOwner       = errors.New("user does not have permission to cancel this order")
	ErrOrderNotCancellable = errors.New("only orders with PENDING status can be cancelled")
	ErrOrderHoldsStock     = errors.New("order is still PENDING and holds reserved stock; cancel it before deleting")
	ErrProductInUse        = errors.New("product is referenced by existing order lines and cannot be deleted")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserNotFound        = errors.New("user not found")
)

// InsufficientStockError is returned when an order line requests more
// units than the product has in stock. It carries enough detail for the
// caller to render a useful message.
type InsufficientStockError struct {
	ProductName string
	Required    int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %q: required %d, available %d",
		e.ProductName, e.Required, e.Available)
}

// InvalidStatusError is returned when a status update names a status
// outside the closed status set.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("unknown order status %q", e.Status)
}

// InvalidTransitionError is returned when a status update asks for a move
// the transition table does not allow.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order status cannot change from %s to %s", e.From, e.To)
}
