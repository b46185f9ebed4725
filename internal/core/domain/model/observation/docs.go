// Package observation implements the defect-tracking sub-lifecycle of a
// verification order.
//
// Observations are child entities of the Order aggregate: each references
// its owning order by ID and carries its own resolution status. Resolving
// or rejecting an observation never fires an order status transition by
// itself; the order exposes derived flags (pending count, requires
// attention) and an operator issues the order-level command explicitly.
package observation
