// Package engine orchestrates submit/cancel/replace against an
// orderbook, running the price-time-priority match loop and emitting
// the resulting events into a bounded ring. One Engine owns one
// symbol's book; it is single-threaded and run-to-completion, so
// callers wanting concurrency run one Engine per goroutine and never
// share an instance across goroutines without their own lock.
package engine
