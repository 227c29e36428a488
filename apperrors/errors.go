package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

/************************************************
/**** MARK: ERROR KINDS ****/
/************************************************/
const KIND_VALIDATION = "VALIDATION_ERROR"
const KIND_NOT_FOUND = "NOT_FOUND"
const KIND_CONFLICT = "CONFLICT"
const KIND_QUOTA_EXCEEDED = "QUOTA_EXCEEDED"
const KIND_UNAUTHORIZED = "UNAUTHORIZED"
const KIND_DEPENDENCY_UNAVAILABLE = "DEPENDENCY_UNAVAILABLE"
const KIND_INTERNAL = "INTERNAL"

// Error carrega um tipo estável (máquina) e uma mensagem (humano).
// Nenhum erro do domínio é engolido: ou vira resposta HTTP ou vai pro log.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KIND_VALIDATION, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KIND_NOT_FOUND, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KIND_CONFLICT, Message: fmt.Sprintf(format, args...)}
}

func QuotaExceeded(format string, args ...any) *Error {
	return &Error{Kind: KIND_QUOTA_EXCEEDED, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KIND_UNAUTHORIZED, Message: fmt.Sprintf(format, args...)}
}

func DependencyUnavailable(format string, args ...any) *Error {
	return &Error{Kind: KIND_DEPENDENCY_UNAVAILABLE, Message: fmt.Sprintf(format, args...)}
}

func Internal(format string, args ...any) *Error {
	return &Error{Kind: KIND_INTERNAL, Message: fmt.Sprintf(format, args...)}
}

// Kind extrai o tipo de um erro qualquer (INTERNAL quando não é *Error).
func Kind(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KIND_INTERNAL
}

// HTTPStatus mapeia o tipo do erro para o status HTTP da resposta.
func HTTPStatus(err error) int {
	switch Kind(err) {
	case KIND_VALIDATION:
		return http.StatusBadRequest
	case KIND_NOT_FOUND:
		return http.StatusNotFound
	case KIND_CONFLICT:
		return http.StatusConflict
	case KIND_QUOTA_EXCEEDED:
		return http.StatusForbidden
	case KIND_UNAUTHORIZED:
		return http.StatusUnauthorized
	case KIND_DEPENDENCY_UNAVAILABLE:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
