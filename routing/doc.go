// Package routing classifies an inbound request as proxy-routed or
// direct-MCP, based on a small set of routing-intent headers. It shares
// the header accessor with the auth package but is otherwise independent:
// the classification picks a code path in the hosting layer, never a
// credential.
package routing
