package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----
// Validation failures abort the invocation synchronously with no state change.

// Validation creates a generic request-shape validation error.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

func ErrWrongAssetCount(want int) *AppError {
	return New("VAL_001", fmt.Sprintf("assets must contain exactly %d element(s)", want), http.StatusBadRequest)
}

func ErrAssetNotInPool(denom string) *AppError {
	return New("VAL_002", fmt.Sprintf("asset %s is not part of the pool", denom), http.StatusBadRequest)
}

func ErrAmountMismatch(denom string) *AppError {
	return New("VAL_003", fmt.Sprintf("declared amount for %s does not match the funds sent", denom), http.StatusBadRequest)
}

func ErrUnexpectedFunds(denom string) *AppError {
	return New("VAL_004", fmt.Sprintf("unexpected asset %s attached", denom), http.StatusBadRequest)
}

func ErrInvalidZeroAmount() *AppError {
	return New("VAL_005", "Invalid zero amount", http.StatusBadRequest)
}

func ErrZeroShare() *AppError {
	return New("VAL_006", "Zero share amount", http.StatusBadRequest)
}

func ErrExceedHardcap() *AppError {
	return New("VAL_007", "Deposit would exceed vault hardcap", http.StatusUnprocessableEntity)
}

func ErrMarketNotFound(marketID string) *AppError {
	return New("VAL_008", fmt.Sprintf("market with id %s not found", marketID), http.StatusNotFound)
}

func ErrMarketNotActive(marketID string) *AppError {
	return New("VAL_009", fmt.Sprintf("market with id %s not active", marketID), http.StatusUnprocessableEntity)
}

func ErrPriceTooOld() *AppError {
	return New("VAL_010", "Price too old", http.StatusUnprocessableEntity)
}

func ErrInsufficientBalance(balance, notional string) *AppError {
	return New("VAL_011", fmt.Sprintf("tradable balance %s below order notional %s", balance, notional), http.StatusUnprocessableEntity)
}

func ErrZeroFeeWithdrawal() *AppError {
	return New("VAL_012", "Can't withdraw zero fees", http.StatusBadRequest)
}

func ErrInsufficientFeeAccrued(denom string) *AppError {
	return New("VAL_013", fmt.Sprintf("insufficient fee accrued for %s", denom), http.StatusUnprocessableEntity)
}

func ErrNoFundsExpected() *AppError {
	return New("VAL_014", "Do not provide funds", http.StatusBadRequest)
}

func ErrUnknownHook(hook string) *AppError {
	return New("VAL_015", fmt.Sprintf("unknown receive hook: %s", hook), http.StatusBadRequest)
}

func ErrQueryUnsupported(name string) *AppError {
	return New("VAL_016", fmt.Sprintf("query %s not supported by this vault", name), http.StatusBadRequest)
}

// ---- Authorization (AUTH) ----
// Reported distinctly from validation errors.

func ErrUnauthorized() *AppError {
	return New("AUTH_001", "Unauthorized", http.StatusForbidden)
}

func ErrShareTokenBound() *AppError {
	return New("AUTH_002", "Share token address is already bound", http.StatusForbidden)
}

func ErrInvalidCredentials() *AppError {
	return New("AUTH_003", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_004", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("AUTH_005", "Invalid signature", http.StatusUnauthorized)
}

func ErrNonceUsed() *AppError {
	return New("AUTH_006", "Delivery nonce has already been used", http.StatusForbidden)
}

// ---- Asynchronous replies (RPL) ----
// Distinct kinds so operators can tell venue failures from decode defects.

func ErrUnrecognizedReply(id uint64) *AppError {
	return New("RPL_001", fmt.Sprintf("unrecognised reply id: %d", id), http.StatusBadRequest)
}

func ErrReplyParseFailure(id uint64, err error) *AppError {
	return Wrap("RPL_002", fmt.Sprintf("invalid reply from sub-message %d", id), http.StatusBadRequest, err)
}

func ErrSubCallFailure(msg string) *AppError {
	return New("RPL_003", fmt.Sprintf("failure response from sub-call: %s", msg), http.StatusBadGateway)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrVaultNotInitialized reports that the singleton configuration has not
// been created yet.
func ErrVaultNotInitialized() *AppError {
	return New("SYS_002", "Vault is not initialized", http.StatusServiceUnavailable)
}
