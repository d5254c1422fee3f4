package toyapi

// LoadError reports a failed catalog fetch: a transport failure or a
// non-success response. The previous product list must be left untouched
// by callers until a later load succeeds.
type LoadError struct {
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *LoadError) Unwrap() error { return e.Err }

// CheckoutError reports a failed order submission. Detail carries the
// server's `detail` message when one was returned; otherwise the generic
// message is used.
type CheckoutError struct {
	Detail string
	Err    error
}

func (e *CheckoutError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return "checkout failed: " + e.Err.Error()
	}
	return "checkout failed"
}

func (e *CheckoutError) Unwrap() error { return e.Err }
