package identity

import "strings"

// Error is a single identity failure. Code is stable, Description is
// localized and meant for people.
type Error struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Result is the outcome of an identity operation: either Ok, or Failed with
// at least one Error.
type Result struct {
	errs []Error
}

// Ok is the successful Result.
var Ok = Result{}

// Failed builds a failed Result. Calling it without errors still yields a
// failure, carrying no description.
func Failed(errs ...Error) Result {
	if len(errs) == 0 {
		errs = []Error{{Code: "Failed"}}
	}
	return Result{errs: errs}
}

// Succeeded reports whether r is Ok.
func (r Result) Succeeded() bool { return len(r.errs) == 0 }

// Errors returns the failures, nil for Ok.
func (r Result) Errors() []Error { return r.errs }

// Message joins the error descriptions with "; ". It is "" for Ok.
func (r Result) Message() string {
	if r.Succeeded() {
		return ""
	}
	parts := make([]string, 0, len(r.errs))
	for _, e := range r.errs {
		if e.Description != "" {
			parts = append(parts, e.Description)
		}
	}
	return strings.Join(parts, "; ")
}

func (r Result) String() string {
	if r.Succeeded() {
		return "Succeeded"
	}
	codes := make([]string, len(r.errs))
	for i, e := range r.errs {
		codes[i] = e.Code
	}
	return "Failed: " + strings.Join(codes, ",")
}

// Err returns nil for Ok and a *ResultError otherwise, so a failed Result can
// abort a transaction and be recovered with errors.As afterwards.
func (r Result) Err() error {
	if r.Succeeded() {
		return nil
	}
	return &ResultError{Result: r}
}

// ResultError carries a failed Result through error returns.
type ResultError struct {
	Result Result
}

func (e *ResultError) Error() string { return "identity: " + e.Result.Message() }
