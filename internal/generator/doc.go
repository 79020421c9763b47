// Package generator wires text analysis, name generation and domain checks
// into the suggestion pipeline served by the generate endpoints.
package generator
