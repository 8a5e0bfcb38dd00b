// Package mocks provides hand-written test doubles for the interfaces at the
// edges of the application, with call tracking for verification in tests.
package mocks
