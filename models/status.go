package models

import "strings"

// Order lifecycle states. PENDING is the only state a user can cancel from.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusShipping  = "SHIPPING"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

// allowedTransitions is the closed transition table for order statuses.
// DELIVERED and CANCELLED are terminal.
var allowedTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipping, StatusCancelled},
	StatusShipping:  {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// NormalizeStatus upper-cases a status string so lookups and comparisons
// are case-insensitive.
func NormalizeStatus(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}

// IsValidStatus reports whether the given string names a known order status
func IsValidStatus(status string) bool {
	_, ok := allowedTransitions[NormalizeStatus(status)]
	return ok
}

// CanTransition reports whether an order may move from one status to another
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[NormalizeStatus(from)] {
		if next == NormalizeStatus(to) {
			return true
		}
	}
	return false
}
