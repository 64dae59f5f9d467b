// Package httputil provides HTTP support used by the LMS API client:
// retry with exponential backoff for transient failures, and a file-based
// response cache with TTL expiry and key namespacing.
package httputil
