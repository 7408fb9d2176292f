// Package host provides an in-process runtime that stands in for the
// external execution environment: it holds the account table, resolves
// program identities, and dispatches invocations while holding
// exclusive access to the target account's buffer.
package host
