package types

import "errors"

// Mode selects which of the two searches a scan runs.
type Mode string

// Supported scan modes.
const (
	ModePF   Mode = "pf"
	ModeBF   Mode = "bf"
	ModeBoth Mode = "both"
)

// Config validation errors.
var (
	ErrModeUnknown  = errors.New("unknown scan mode")
	ErrNMaxNegative = errors.New("nmax must be nonnegative")
)

// knownModes is the set of modes that Validate accepts.
var knownModes = map[Mode]bool{
	ModePF:   true,
	ModeBF:   true,
	ModeBoth: true,
}

// ScanConfig holds the parameters for one scan invocation. The search
// functions consume it as plain parameters; flag and file parsing happen
// in the CLI layer.
type ScanConfig struct {
	Mode           Mode   // pf, bf, or both
	NMax           int    // inclusive upper bound on n
	IncludeTrivial bool   // emit records classified trivial
	IncludePFF3    bool   // emit records classified PF_F3 (PF only)
	OutDir         string // directory for CSV output
	StorePath      string // optional SQLite results database; empty disables
}

// Validate checks that the config is well-formed. It returns a sentinel
// error from this package on failure. The searches assume a validated
// config and never re-check their bounds.
func (c ScanConfig) Validate() error {
	if !knownModes[c.Mode] {
		return ErrModeUnknown
	}
	if c.NMax < 0 {
		return ErrNMaxNegative
	}
	return nil
}

// RunsPF reports whether the config's mode includes the PF search.
func (c ScanConfig) RunsPF() bool {
	return c.Mode == ModePF || c.Mode == ModeBoth
}

// RunsBF reports whether the config's mode includes the BF search.
func (c ScanConfig) RunsBF() bool {
	return c.Mode == ModeBF || c.Mode == ModeBoth
}
