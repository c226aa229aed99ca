// Package types defines the scan configuration, result records, and
// standard errors shared by the factseek search components.
package types
