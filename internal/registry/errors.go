package registry

// Code identifies a registry failure. Codes are stable and are what the
// message catalogue keys on; the text here is the canonical English
// wording.
type Code int

const (
	CodeInvalidBatch Code = iota + 1
	CodeInvalidName
	CodeInvalidDate
	CodeInvalidQuantity
	CodeDuplicateBatch
	CodeTooManyBatches
	CodeInvalidArguments
	CodeAlreadyVaccinated
	CodeNoStock
	CodeNoSuchVaccine
	CodeNoSuchBatch
	CodeNoSuchUser
	CodeMissingBatch
)

// Error is a registry failure: a code plus, for not-found failures, the
// subject that was looked up. Every non-fatal failure an operation can
// report is one of these; operations validate fully before mutating, so
// an Error always means state is unchanged.
type Error struct {
	Code    Code
	Subject string
}

var englishText = map[Code]string{
	CodeInvalidBatch:      "invalid batch",
	CodeInvalidName:       "invalid name",
	CodeInvalidDate:       "invalid date",
	CodeInvalidQuantity:   "invalid quantity",
	CodeDuplicateBatch:    "duplicate batch number",
	CodeTooManyBatches:    "too many vaccines",
	CodeInvalidArguments:  "invalid arguments",
	CodeAlreadyVaccinated: "already vaccinated",
	CodeNoStock:           "no stock",
	CodeNoSuchVaccine:     "no such vaccine",
	CodeNoSuchBatch:       "no such batch",
	CodeNoSuchUser:        "no such user",
	CodeMissingBatch:      "missing batch",
}

func (e *Error) Error() string {
	text := englishText[e.Code]
	if e.Subject != "" {
		return e.Subject + ": " + text
	}
	return text
}

// Is matches by code only, so errors.Is works against the sentinels
// regardless of subject.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for subject-less failures.
var (
	ErrInvalidBatch      = &Error{Code: CodeInvalidBatch}
	ErrInvalidName       = &Error{Code: CodeInvalidName}
	ErrInvalidDate       = &Error{Code: CodeInvalidDate}
	ErrInvalidQuantity   = &Error{Code: CodeInvalidQuantity}
	ErrDuplicateBatch    = &Error{Code: CodeDuplicateBatch}
	ErrTooManyBatches    = &Error{Code: CodeTooManyBatches}
	ErrInvalidArguments  = &Error{Code: CodeInvalidArguments}
	ErrAlreadyVaccinated = &Error{Code: CodeAlreadyVaccinated}
	ErrNoStock           = &Error{Code: CodeNoStock}
	ErrMissingBatch      = &Error{Code: CodeMissingBatch}
)

// NoSuchVaccine reports an unknown vaccine name.
func NoSuchVaccine(name string) *Error {
	return &Error{Code: CodeNoSuchVaccine, Subject: name}
}

// NoSuchBatch reports an unknown batch id.
func NoSuchBatch(id string) *Error {
	return &Error{Code: CodeNoSuchBatch, Subject: id}
}

// NoSuchUser reports an unknown user.
func NoSuchUser(name string) *Error {
	return &Error{Code: CodeNoSuchUser, Subject: name}
}
