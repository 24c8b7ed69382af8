// Package fakturoid defines the public types and interfaces for the
// Fakturoid v3 accounting API client.
//
// It contains the resource types (Subject, Invoice, Expense, ...), the typed
// error taxonomy, the route template resolver, the partial-update change
// tracker, and the page iterator. The concrete client implementation lives in
// internal packages; construct one through pkg/fakturoidclient.
package fakturoid
