package order

import (
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions:
//
//	Placed ──> Shipped ──> Delivered
//	   │
//	   └─────> Cancelled
//
// Delivered and Cancelled are terminal. No other edge is legal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned at checkout.
	Placed

	// Shipped indicates the wholesaler has dispatched the order.
	Shipped

	// Delivered indicates the order reached the retailer. Terminal.
	Delivered

	// Cancelled indicates the retailer cancelled the order before
	// shipment. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Placed:    "PLACED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "PLACED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the wire form of a status ("PLACED", "SHIPPED",
// "DELIVERED", "CANCELLED"). Anything else is invalid.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status " + s)
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire form of the status. It implements fmt.Stringer
// and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Advance transitions to the requested status. The only legal requests are
// Placed->Shipped and Shipped->Delivered; everything else, including
// cancellation, is rejected with an InvalidTransitionError. Cancellation has
// its own path on the aggregate because it is retailer-initiated.
func (s Status) Advance(to Status) (Status, error) {
	if to == Shipped && s == Placed {
		return Shipped, nil
	}
	if to == Delivered && s == Shipped {
		return Delivered, nil
	}
	return Unknown, errs.NewInvalidTransitionError("order", s.String(), to.String())
}
