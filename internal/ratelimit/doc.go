// Package ratelimit wraps functions to change how often, or whether, they
// actually run: Memo caches results per key, Debouncer runs only after
// calls go quiet, Throttler runs on the leading edge of each window.
//
// Each wrapper owns its state exclusively; two wrappers never share a
// cache or a timer.
package ratelimit
