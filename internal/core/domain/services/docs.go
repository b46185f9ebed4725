// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the verification system.
// It implements workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - VerifierAssignmentService: A domain service for finding and assigning
//     verifiers to orders
package services
