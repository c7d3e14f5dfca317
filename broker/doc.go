// Package broker defines the seams between the resolution engine and the
// external systems that actually hold credentials: a token broker that
// exchanges a destination name for an access token, and a destination
// resolver that maps a destination name to a base URL.
//
// The package performs no network I/O itself. CachingBroker wraps a
// caller-supplied TokenBroker with per-destination caching and request
// deduplication; Dispatch routes a valid resolution report to the right
// credential path.
package broker
