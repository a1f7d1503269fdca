package connector

// Result is the collapsed outcome of an outbound call: either a decoded
// JSON value or nothing.
type Result struct {
	value   any
	decoded bool
	err     error
}

func decoded(v any) Result {
	return Result{value: v, decoded: true}
}

// Decoded returns the parsed JSON value. Objects are map[string]any,
// numbers float64.
func (r Result) Decoded() (any, bool) {
	return r.value, r.decoded
}

func (r Result) Empty() bool {
	return !r.decoded
}

// Err is the reason for an Empty result. It is only kept by clients
// built WithStrict(true); otherwise always nil.
func (r Result) Err() error {
	return r.err
}
