// Package headers defines the HTTP header names recognized by the
// authentication resolution engine and provides lookup helpers that
// tolerate both normalized and non-normalized header maps.
//
// This is the single source of truth for header names used across the
// module; other packages must not embed header-name literals.
package headers
