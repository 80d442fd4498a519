// Package retry provides exponential backoff for calls to external services
// such as the embedding API and the record store.
package retry
