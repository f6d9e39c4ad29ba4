package serviceerrors

import "errors"

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindDuplicateID
	KindInsufficientStock
	KindExpired
	KindInvalidArgument
	KindUnknownProductKind
	KindParse
	KindIO
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewDuplicateIDError(message string) *ServiceError {
	return &ServiceError{Kind: KindDuplicateID, Message: message}
}

func NewInsufficientStockError(message string) *ServiceError {
	return &ServiceError{Kind: KindInsufficientStock, Message: message}
}

func NewExpiredError(message string) *ServiceError {
	return &ServiceError{Kind: KindExpired, Message: message}
}

func NewInvalidArgumentError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidArgument, Message: message}
}

func NewUnknownKindError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnknownProductKind, Message: message}
}

func NewParseError(message string) *ServiceError {
	return &ServiceError{Kind: KindParse, Message: message}
}

func NewIOError(message string) *ServiceError {
	return &ServiceError{Kind: KindIO, Message: message}
}
