// Package kernel provides core domain primitives for the verification system.
// It implements the value objects shared across aggregates following
// Domain-Driven Design principles.
//
// The package includes:
//   - ID: persistence-assigned numeric identity for entities and aggregates
//   - DocumentNumber / DocumentType: identity documents validated per type
//   - PhoneNumber, Email, Ruc: validated, normalized contact data
//   - OrderCode / ReportCode: unique business keys for orders and reports
//   - Address: the site-visit destination
//   - VisitDate / VisitTime: scheduled visit slot with date-boundary validation
//   - FinalResult: closed verdict set gating report export
//   - WorkSchedule: a verifier's declared working days and hours
//
// These primitives enforce domain invariants at construction time, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
