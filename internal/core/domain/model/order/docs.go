// Package order implements the Order aggregate, the root of the
// verification workflow.
//
// An order tracks a field-verification request through a closed status
// lattice (see Status). The aggregate owns the client and company
// sub-records, the verifier assignment, the attached documents and the
// recorded observations; the generated report is referenced by ID and
// lives in its own aggregate.
package order
