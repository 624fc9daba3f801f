// Package menu provides the pizza catalog consumed by order management.
//
// The catalog is a plain keyed-record store with no concurrency concerns:
// pizzas are looked up by id for order validation and response enrichment,
// and edited through simple create/availability operations. The order core
// never caches or mutates catalog entries.
package menu
