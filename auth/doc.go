// Package auth resolves which authentication method an inbound request
// should use, based solely on its headers.
//
// Four methods are recognized (SAP destination, MCP destination, direct
// JWT, and basic), each with a fixed priority rank. The Resolver inspects
// the header map, validates the highest-priority method that is signaled,
// and returns a Report listing every problem found and every header that
// was silently pre-empted. The package performs no I/O: it never exchanges
// credentials for tokens and never inspects a token beyond its shape.
package auth
