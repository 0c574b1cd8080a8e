// Package services provides domain services that implement business rules
// spanning multiple domain entities of the travel-order workflow.
//
// The package includes:
//   - AccessPolicy: a pure decision service answering which operations an
//     actor may perform on an order
//
// Domain services hold no state and produce no side effects; they only
// evaluate rules over the entities handed to them.
package services
