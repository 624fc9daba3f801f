// Package kernel contains shared value objects used across domain aggregates.
//
// It currently provides OrderCode, the client-facing order identifier that is
// generated once at order creation, globally unique, and immutable. Domain
// packages use kernel types for identity concerns that do not belong to a
// single aggregate.
package kernel
