package domain

import "errors"

// Classified outcomes the core signals to its callers. All are local,
// recoverable conditions; nothing here is fatal to the process.
var (
	// ErrUnknownOption: requested catalog key does not exist. No state changed.
	ErrUnknownOption = errors.New("unknown menu option")

	// ErrInvalidExtraPrice: extra-cost input did not parse as a number.
	ErrInvalidExtraPrice = errors.New("invalid extra price")

	// ErrMissingCustomerInfo / ErrEmptyCart: finalize blocked, cart left intact.
	ErrMissingCustomerInfo = errors.New("customer name and phone are required")
	ErrEmptyCart           = errors.New("cart has no items")

	// ErrOutOfRange: removal or status update referenced a nonexistent
	// position. No mutation performed.
	ErrOutOfRange = errors.New("position out of range")

	// ErrUnknownStatus: a transition named a status outside the declared set.
	ErrUnknownStatus = errors.New("unknown order status")

	// ErrMenuNotFound: no menu has ever been saved. A valid initial state,
	// distinct from corruption; it blocks cart construction.
	ErrMenuNotFound = errors.New("menu not configured")

	// ErrCorruptData: a persisted file exists but is not valid JSON. Kept
	// distinct from absence so a caller can warn before starting fresh.
	ErrCorruptData = errors.New("persisted data is corrupt")

	// ErrStorageWrite: a write could not complete. The previous on-disk
	// content remains intact.
	ErrStorageWrite = errors.New("storage write failed")
)
