package rankerrors

import "fmt"

// RankError is the structured error type returned by the ranking core.
// Every error a Search call can return is one of the four kinds in
// §7, each with a stable Code so callers can branch on failure kind
// without string matching.
type RankError struct {
	Code     string
	Message  string
	Category Category
	Cause    error
}

func (e *RankError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *RankError) Unwrap() error {
	return e.Cause
}

func (e *RankError) Is(target error) bool {
	t, ok := target.(*RankError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newError(code string, category Category, message string, cause error) *RankError {
	return &RankError{Code: code, Message: message, Category: category, Cause: cause}
}

// SchemaMissing reports a query or filter referencing an attribute the
// schema does not declare.
func SchemaMissing(message string, cause error) *RankError {
	return newError(ErrCodeSchemaMissing, CategorySchema, message, cause)
}

// IndexIO reports a failure reading posting lists, ranked attributes,
// or facet sets from the index.
func IndexIO(message string, cause error) *RankError {
	return newError(ErrCodeIndexIO, CategoryIndex, message, cause)
}

// QueryTreeError reports a malformed or unsupported query tree handed
// to Search by the caller's query builder.
func QueryTreeError(message string, cause error) *RankError {
	return newError(ErrCodeQueryTree, CategoryQuery, message, cause)
}

// Internal reports an invariant violation detected mid-sort -- e.g. a
// RawDocument vanishing from bookkeeping during finalization (§7's
// degradation path: log and treat the document as rejected rather than
// panicking).
func Internal(message string, cause error) *RankError {
	return newError(ErrCodeInternalInconsistency, CategoryInternal, message, cause)
}

// Code extracts the error code from err, or "" if err is not a
// *RankError.
func Code(err error) string {
	if re, ok := err.(*RankError); ok {
		return re.Code
	}
	return ""
}
