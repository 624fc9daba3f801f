// Package services provides domain services that implement business logic
// spanning multiple domain entities in the pizzeria system.
//
// The package includes:
//   - DuplicateOrderDetector: A domain service that detects resubmission of
//     an equivalent order within the duplicate-submission window
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root.
package services
