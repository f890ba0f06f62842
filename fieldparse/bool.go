package fieldparse

var (
	defaultTrues  = [][]byte{[]byte("true")}
	defaultFalses = [][]byte{[]byte("false")}
)

// parseBool matches the configured boolean tokens at the current position,
// taking the longest match when a true token and a false token overlap.
func parseBool(src Source, pos, n int, b byte, code ReturnCode, pl PosLen, opts *Options) (int, ReturnCode, PosLen, bool) {
	trues, falses := opts.Trues, opts.Falses
	if trues == nil {
		trues = defaultTrues
	}
	if falses == nil {
		falses = defaultFalses
	}

	best := 0
	val := false
	for _, t := range trues {
		if len(t) > best && src.MatchAt(pos, n, t) {
			best = len(t)
			val = true
			break
		}
	}
	for _, f := range falses {
		if len(f) > best && src.MatchAt(pos, n, f) {
			best = len(f)
			val = false
			break
		}
	}

	if best == 0 {
		code |= Invalid
		return pos, code, pl, false
	}
	pos += best
	code |= OK
	if src.EOF(pos, n) {
		code |= EOF
	}
	return pos, code, pl, val
}
