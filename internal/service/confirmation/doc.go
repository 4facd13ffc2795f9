// Package confirmation implements the opt-in confirmation pipeline: resolve
// a presented token to its subscriber and flip the subscriber to confirmed.
// Confirming the same valid token again is a no-op success.
package confirmation
