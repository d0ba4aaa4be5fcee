package errors

import (
	"net/http"

	"supermall/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"此電子郵件已被註冊",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"ROLE_INVALID",
		"無效的角色",
		"",
	)

	ErrRoleAlreadyChosen = NewBaseError(
		http.StatusConflict,
		"ROLE_ALREADY_CHOSEN",
		"此帳號已完成角色選擇",
		"",
	)

	// Mall / capacity ledger errors
	ErrMallNotFound = NewBaseError(
		http.StatusNotFound,
		"MALL_NOT_FOUND",
		"找不到該商場",
		"",
	)

	ErrCapacityExceeded = NewBaseError(
		http.StatusConflict,
		"CAPACITY_EXCEEDED",
		"該商場已達商家數量上限",
		"",
	)

	ErrMallNotEmpty = NewBaseError(
		http.StatusConflict,
		"MALL_NOT_EMPTY",
		"該商場仍有進駐商家，無法刪除",
		"",
	)

	ErrMaxBelowCurrent = NewBaseError(
		http.StatusBadRequest,
		"MAX_BELOW_CURRENT",
		"商家數量上限不可低於現有商家數",
		"",
	)

	ErrMerchantNotAssigned = NewBaseError(
		http.StatusConflict,
		"MERCHANT_NOT_ASSIGNED",
		"商家尚未進駐任何商場",
		"",
	)

	// Catalog errors
	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"找不到該商店",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"找不到該商品",
		"",
	)

	ErrOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_NOT_FOUND",
		"找不到該優惠",
		"",
	)

	// External collaborator errors
	ErrIdentityProviderFailed = NewBaseError(
		http.StatusBadGateway,
		"IDENTITY_PROVIDER_FAILED",
		"身分驗證服務發生錯誤",
		"",
	)

	ErrInvalidIDToken = NewBaseError(
		http.StatusUnauthorized,
		"ID_TOKEN_INVALID",
		"無效或已過期的登入憑證",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"IMAGE_UPLOAD_FAILED",
		"圖片上傳失敗",
		"",
	)

	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_INVALID",
		"不支援的圖片格式或檔案過大",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"請先登入",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DocumentStoreError represents a document-store execution error, implementing the AppError interface
type DocumentStoreError struct {
	err     error
	details string
}

// NewDocumentStoreError creates a document-store-related error
func NewDocumentStoreError(err error, details string) AppError {
	return &DocumentStoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DocumentStoreError) Error() string {
	return errors.Wrap(e.err, "document store execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DocumentStoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DocumentStoreError) ErrorCode() string {
	return "DOCUMENT_STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *DocumentStoreError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DocumentStoreError) Details() string {
	return e.details
}
