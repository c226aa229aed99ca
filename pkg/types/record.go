package types

import (
	"strconv"
	"time"
)

// Classification tags. Every discovered solution carries exactly one.
// PF solutions use all three; BF solutions use trivial and exceptional only.
const (
	ClassTrivial     = "trivial"
	ClassPFF3        = "PF_F3"
	ClassExceptional = "exceptional"
)

// PFRecord is one solution of nPr = c!. Immutable once created; records are
// produced in (n asc, r asc) order and never reordered.
type PFRecord struct {
	N     int
	R     int
	C     int
	Class string
}

// Row returns the CSV field values in header order (n, r, c, class).
func (p PFRecord) Row() []string {
	return []string{strconv.Itoa(p.N), strconv.Itoa(p.R), strconv.Itoa(p.C), p.Class}
}

// BFRecord is one solution of C(n, r) = c!.
type BFRecord struct {
	N     int
	R     int
	C     int
	Class string
}

// Row returns the CSV field values in header order (n, r, c, class).
func (b BFRecord) Row() []string {
	return []string{strconv.Itoa(b.N), strconv.Itoa(b.R), strconv.Itoa(b.C), b.Class}
}

// Run describes one scan invocation, as recorded in the optional results
// store. RunID is a UUID generated by the CLI per invocation.
type Run struct {
	RunID          string
	Mode           Mode
	NMax           int
	IncludeTrivial bool
	IncludePFF3    bool
	CreatedAt      time.Time
}
