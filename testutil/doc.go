// Package testutil provides shared helpers for tests and benchmarks: a
// seeded, thread-safe random source, random point population generators, and
// an empirical time-complexity estimator used by the scaling tests.
package testutil
