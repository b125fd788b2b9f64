// Package records defines the loosely typed organization record produced by
// the acquisition tiers and consumed by the fixed-width encoder.
package records
