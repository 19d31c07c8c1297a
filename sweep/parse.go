package sweep

import (
	"regexp"
	"strconv"
)

// The workload reports its two facts as free text. Both patterns are matched
// case-insensitively anywhere in the captured output; the elapsed line must be
// tagged with the execution mode the workload ran in.
var (
	elapsedRe = regexp.MustCompile(`(?i)\[(?:sequential|threaded)\]\s+elapsed:\s*([0-9.]+)\s*ms`)
	totalRe   = regexp.MustCompile(`(?i)total\s+\w+:\s*([0-9]+)`)
)

// ParseOutput extracts the elapsed milliseconds and the result count from one
// captured output blob. Either pattern being absent or malformed yields a
// *ParseError carrying the raw blob.
func ParseOutput(size, threads int, out string) (float64, int, error) {
	mTime := elapsedRe.FindStringSubmatch(out)
	mTotal := totalRe.FindStringSubmatch(out)

	var missing string
	switch {
	case mTime == nil && mTotal == nil:
		missing = "elapsed and total lines"
	case mTime == nil:
		missing = "elapsed line"
	case mTotal == nil:
		missing = "total line"
	}
	if missing != "" {
		return 0, 0, &ParseError{Size: size, Threads: threads, Missing: missing, Output: out}
	}

	elapsed, err := strconv.ParseFloat(mTime[1], 64)
	if err != nil {
		return 0, 0, &ParseError{Size: size, Threads: threads, Missing: "numeric elapsed value", Output: out}
	}
	total, err := strconv.Atoi(mTotal[1])
	if err != nil {
		return 0, 0, &ParseError{Size: size, Threads: threads, Missing: "numeric total value", Output: out}
	}
	return elapsed, total, nil
}
