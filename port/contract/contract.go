package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
//
// When a contract needs more than the subject itself, like the elements the subject is expected to hold,
// the subject should be a "XXXSubject" struct that carries all of them as fields,
// so a single Make function can set up every testing case of the contract.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a behavioural specification of a role interface.
//
// In collkit, every capability interface from port/collection has a contract,
// and every container or view that claims a capability is expected to pass it.
// The contracts describe the observable behaviour,
// and not how a given container achieves it.
type Contract interface {
	testcase.Suite
	// Test is the function that asserts the expected behavioural requirements of an implementation.
	Test(*testing.T)
	// Benchmark will help with what to measure.
	Benchmark(*testing.B)
}
