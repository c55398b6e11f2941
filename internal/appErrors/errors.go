package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Details:  details,
		Err:      e.Err,
		HTTPCode: e.HTTPCode,
	}
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Пользователи
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already registered", http.StatusConflict)
	ErrUserSuspended      = New(CodeUserSuspended, "User account suspended", http.StatusForbidden)
	ErrUserInactive       = New(CodeUserInactive, "User account inactive", http.StatusForbidden)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrWrongPassword      = New(CodeInvalidCredentials, "Current password is incorrect", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
	ErrCannotModifySelf   = New(CodeCannotModifySelf, "Cannot modify your own account", http.StatusBadRequest)

	// Профили
	ErrProfileNotFound = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)

	// Верификация
	ErrVerificationNotFound    = New(CodeVerificationNotFound, "Verification record not found", http.StatusNotFound)
	ErrVerificationNotPending  = New(CodeInvalidState, "Verification record is not pending", http.StatusConflict)
	ErrVerificationInProgress  = New(CodeDuplicate, "A verification request is already pending", http.StatusConflict)
	ErrRejectCommentsRequired  = New(CodeValidationFailed, "Comments are required when rejecting a verification", http.StatusBadRequest)
	ErrInvalidVerificationType = New(CodeValidationFailed, "Invalid verification type", http.StatusBadRequest)

	// Вакансии
	ErrJobNotFound          = New(CodeJobNotFound, "Job not found", http.StatusNotFound)
	ErrJobNotOpen           = New(CodeInvalidState, "Job is no longer accepting applications", http.StatusConflict)
	ErrInvalidJobTransition = New(CodeInvalidState, "Job status transition is not allowed", http.StatusConflict)
	ErrInvalidBudgetRange   = New(CodeValidationFailed, "Maximum budget cannot be less than minimum budget", http.StatusBadRequest)

	// Отклики
	ErrApplicationNotFound   = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrApplicationExists     = New(CodeDuplicate, "You have already applied for this job", http.StatusConflict)
	ErrApplicationNotPending = New(CodeInvalidState, "Application is no longer pending", http.StatusConflict)
	ErrInvalidDecision       = New(CodeValidationFailed, "Decision must be accepted or rejected", http.StatusBadRequest)

	// Сообщения и уведомления
	ErrMessageNotFound      = New(CodeMessageNotFound, "Message not found", http.StatusNotFound)
	ErrNotificationNotFound = New(CodeNotificationNotFound, "Notification not found", http.StatusNotFound)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Функции-помощники
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "Database operation failed", http.StatusInternalServerError)
}
