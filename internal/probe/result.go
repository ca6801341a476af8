package probe

import "time"

type Verdict int

const (
	VerdictError Verdict = iota
	VerdictPass
	VerdictFail
)

func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "pass"
	case VerdictFail:
		return "fail"
	default:
		return "error"
	}
}

// Result is the outcome of a single probe run. Err is set only for VerdictError.
type Result struct {
	Verdict  Verdict
	Sent     int
	Expected int
	Received []byte
	Err      error
	Duration time.Duration
}

func (r Result) Passed() bool {
	return r.Verdict == VerdictPass
}
