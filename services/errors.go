package services

import (
	"errors"
	"fmt"
	"net/http"
)

type TryOnErrorKind string

const (
	MissingImage        TryOnErrorKind = "MissingImage"
	MissingStyle        TryOnErrorKind = "MissingStyle"
	ServiceUnconfigured TryOnErrorKind = "ServiceUnconfigured"
	RateLimited         TryOnErrorKind = "RateLimited"
	QuotaExhausted      TryOnErrorKind = "QuotaExhausted"
	UpstreamFailure     TryOnErrorKind = "UpstreamFailure"
	NoImageProduced     TryOnErrorKind = "NoImageProduced"
	Unclassified        TryOnErrorKind = "Unclassified"
)

const upstreamFailurePrefix = "AI处理失败: "

var errorTable = map[TryOnErrorKind]struct {
	status  int
	message string
}{
	MissingImage:        {http.StatusBadRequest, "请上传人物照片"},
	MissingStyle:        {http.StatusBadRequest, "请选择服装风格"},
	ServiceUnconfigured: {http.StatusInternalServerError, "AI服务未配置"},
	RateLimited:         {http.StatusTooManyRequests, "请求过于频繁，请稍后再试"},
	QuotaExhausted:      {http.StatusPaymentRequired, "AI服务配额已用完"},
	UpstreamFailure:     {http.StatusInternalServerError, "AI处理失败"},
	NoImageProduced:     {http.StatusInternalServerError, "AI未能生成图片"},
	Unclassified:        {http.StatusInternalServerError, "换装失败，请重试"},
}

// TryOnError is the only error shape the try-on endpoint turns into a response.
// Message is safe to show to the user; Err keeps the cause for logs.
type TryOnError struct {
	Kind    TryOnErrorKind
	Status  int
	Message string
	Err     error
}

func (e *TryOnError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s (%s)", e.Kind, e.Message)
}

func (e *TryOnError) Unwrap() error {
	return e.Err
}

func NewTryOnError(kind TryOnErrorKind, cause error) *TryOnError {
	entry, ok := errorTable[kind]
	if !ok {
		kind = Unclassified
		entry = errorTable[Unclassified]
	}
	return &TryOnError{Kind: kind, Status: entry.status, Message: entry.message, Err: cause}
}

// NewUpstreamFailure embeds the raw upstream text in the message for diagnostics.
func NewUpstreamFailure(status int, body string) *TryOnError {
	tryOnErr := NewTryOnError(UpstreamFailure, fmt.Errorf("upstream returned status %d", status))
	tryOnErr.Message = upstreamFailurePrefix + body
	return tryOnErr
}

// ErrorFromUpstreamStatus maps a non-2xx upstream status to the error taxonomy.
func ErrorFromUpstreamStatus(status int, body string) *TryOnError {
	switch status {
	case http.StatusTooManyRequests:
		return NewTryOnError(RateLimited, fmt.Errorf("upstream returned status %d: %s", status, body))
	case http.StatusPaymentRequired:
		return NewTryOnError(QuotaExhausted, fmt.Errorf("upstream returned status %d: %s", status, body))
	default:
		return NewUpstreamFailure(status, body)
	}
}

// AsTryOnError classifies any error; unknown errors become Unclassified.
func AsTryOnError(err error) *TryOnError {
	if err == nil {
		return nil
	}
	var tryOnErr *TryOnError
	if errors.As(err, &tryOnErr) {
		return tryOnErr
	}
	return NewTryOnError(Unclassified, err)
}
