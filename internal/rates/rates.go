// Package rates queries the two external market-data feeds: currency
// exchange rates and stock closing prices. Calls are blocking, carry no
// retry logic, and rely on the caller's context for timeouts.
package rates

import "fmt"

// feedDateFormat is the wire format for feed query dates.
const feedDateFormat = "2006-01-02"

// StatusError reports a non-2xx response from a feed.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}
