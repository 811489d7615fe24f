package returns

import (
	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of a return request. Requested is the only
// initial value. Beyond that the transition graph is deliberately not
// enforced: wholesalers and admins may set any valid status, matching the
// observed product behavior. Rejected and Processed are treated as terminal
// by convention only.
type Status int

const (
	StatusUnknown Status = iota

	// StatusRequested is the initial status of every return request.
	StatusRequested

	// StatusApproved means the wholesaler accepted the return.
	StatusApproved

	// StatusRejected means the wholesaler declined the return.
	StatusRejected

	// StatusProcessed means an approved return has been completed.
	StatusProcessed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusRequested: "REQUESTED",
		StatusApproved:  "APPROVED",
		StatusRejected:  "REJECTED",
		StatusProcessed: "PROCESSED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusRequested: "REQUESTED",
		StatusApproved:  "APPROVED",
		StatusRejected:  "REJECTED",
		StatusProcessed: "PROCESSED",
	}
}

// StatusFromString parses the wire form of a return status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("return status " + s)
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("return status")
	}
	return nil
}

// String returns the wire form of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
