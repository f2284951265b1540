// Package httputil provides retry helpers for upstream HTTP fetches.
//
// # Retry
//
// [Retry] runs a fetch up to a fixed number of attempts. Only errors
// wrapped in [RetryableError] are retried; everything else is returned
// immediately:
//
//	err := httputil.Retry(ctx, attempts, time.Second, func() error {
//	    return client.fetch(ctx, url)
//	})
//
// versionwatch defaults to a single attempt, so a transport failure is
// reported straight away. Raising --retries enables exponential backoff
// starting at one second.
package httputil
