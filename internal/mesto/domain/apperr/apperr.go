// Package apperr описывает ошибки, видимые клиенту: вид ошибки, сообщение
// и единое соответствие вида HTTP статусу.
package apperr

import (
	"errors"
	"net/http"
)

// Kind - вид ошибки.
type Kind int

// Виды ошибок.
const (
	KindInternal Kind = iota
	KindValidation
	KindBadInput
	KindNotFound
	KindDuplicate
	KindAuth
	KindAccess
)

// Сообщения для клиента.
const (
	MsgInternal          = "На сервере произошла ошибка"
	MsgRouteNotFound     = "Запрашиваемый ресурс не найден"
	MsgInvalidRequest    = "Переданы некорректные данные"
	MsgAuthRequired      = "Необходимо авторизоваться"
	MsgWrongCredentials  = "Неправильные почта или пароль"
	MsgUserNotFound      = "Пользователь с указанным _id не найден"
	MsgBadUserData       = "Переданы некорректные данные пользователя"
	MsgBadSignupData     = "Переданы некорректные данные при создании пользователя"
	MsgBadProfileData    = "Переданы некорректные данные при обновлении профиля"
	MsgBadAvatarData     = "Переданы некорректные данные при обновлении аватара"
	MsgEmailExists       = "Пользователь с таким email уже существует"
	MsgCardNotFound      = "Карточка с указанным _id не найдена"
	MsgLikeCardNotFound  = "Передан несуществующий _id карточки"
	MsgBadCardData       = "Переданы некорректные данные при создании карточки"
	MsgBadLikeData       = "Переданы некорректные данные для постановки лайка"
	MsgBadDislikeData    = "Переданы некорректные данные для снятия лайка"
	MsgForeignCardDelete = "Нельзя удалить чужую карточку"
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBadInput:
		return "bad_input"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	case KindAuth:
		return "auth"
	case KindAccess:
		return "access"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// StatusCode возвращает HTTP статус для вида ошибки.
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation, KindBadInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicate:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindAccess:
		return http.StatusForbidden
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// FieldViolation описывает нарушение правила для одного поля запроса.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Error - ошибка с видом и сообщением для клиента. Причина хранится в Err
// и клиенту не передается.
type Error struct {
	Kind    Kind
	Message string
	Details []FieldViolation
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New создает ошибку заданного вида.
func New(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func Validation(message string, cause error, details ...FieldViolation) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: cause, Details: details}
}

func BadInput(message string, cause error) *Error {
	return New(KindBadInput, message, cause)
}

func NotFound(message string, cause error) *Error {
	return New(KindNotFound, message, cause)
}

func Duplicate(message string, cause error) *Error {
	return New(KindDuplicate, message, cause)
}

func Auth(message string, cause error) *Error {
	return New(KindAuth, message, cause)
}

func Access(message string, cause error) *Error {
	return New(KindAccess, message, cause)
}

func Internal(cause error) *Error {
	return New(KindInternal, MsgInternal, cause)
}

// From извлекает *Error из цепочки. Любая другая ошибка становится внутренней.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
