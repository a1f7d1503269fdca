package record

// Kind tags the outcome of a service operation.
type Kind int

const (
	KindSuccess Kind = iota
	KindNotFound
	KindBadRequest
	KindInternalError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindInternalError:
		return "internal_error"
	}
	return "unknown"
}

// Result is what every service operation returns. Record is only set on
// successful reads and creates.
type Result struct {
	Kind    Kind
	Record  *Record
	Message string
}

func Success(rec *Record, message string) Result {
	return Result{Kind: KindSuccess, Record: rec, Message: message}
}

func NotFound(message string) Result {
	return Result{Kind: KindNotFound, Message: message}
}

func BadRequest(message string) Result {
	return Result{Kind: KindBadRequest, Message: message}
}

func InternalError(message string) Result {
	return Result{Kind: KindInternalError, Message: message}
}
