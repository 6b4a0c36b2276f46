package caverippererr

import "fmt"

// ContractViolationError reports that a CaveInfo value (or a derived
// in-progress layout) violates an internal contract the generator
// relies on — e.g. a door direction outside 0..3, a rotation outside
// 0..3, or a sublevel with no declared starting room. These are always
// data or logic bugs, never ordinary runtime conditions.
type ContractViolationError struct {
	Field  string
	Detail string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("contract violation: %s: %s", e.Field, e.Detail)
}

// NewContractViolation builds a ContractViolationError citing the
// offending field.
func NewContractViolation(field, detail string) *ContractViolationError {
	return &ContractViolationError{Field: field, Detail: detail}
}

// Abort panics with a ContractViolationError. The generator calls this
// instead of returning an error once CaveInfo validation has already
// passed: anything it still catches at generation time is a logic bug,
// not a condition the caller can recover from (spec.md §4.3's "Fatal;
// abort with a diagnostic citing the offending field").
func Abort(field, detail string) {
	panic(NewContractViolation(field, detail))
}
