// Package testutil holds helpers shared by the test suites: a thread-safe log
// buffer, a recording fake engine and writers for PNG fixtures.
package testutil
