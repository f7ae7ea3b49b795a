package serializer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var log = zap.NewNop()

// SetLogger installs the process logger for error responses.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Response
type Response struct {
	Code   int          `json:"code"`
	Data   interface{}  `json:"data,omitempty"`
	Msg    string       `json:"msg"`
	Error  string       `json:"error,omitempty"`
	Fields []FieldIssue `json:"fields,omitempty"`
}

// FieldIssue describes one invalid request field.
type FieldIssue struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Err
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// DBErr
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	log.Error("store failure", zap.Error(err))
	return Err(http.StatusInternalServerError, msg, err)
}

// ParamErr carries field-level issues when the error comes from request
// binding.
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	res := Err(http.StatusBadRequest, msg, err)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			res.Fields = append(res.Fields, FieldIssue{Field: fe.Field(), Rule: fe.Tag()})
		}
	}
	return res
}

// NotFoundErr
func NotFoundErr(msg string, err error) Response {
	if msg == "" {
		msg = "not found"
	}
	return Err(http.StatusNotFound, msg, err)
}

// ConflictErr reports a parent/child mismatch or a reference that blocks
// the operation.
func ConflictErr(msg string, err error) Response {
	if msg == "" {
		msg = "conflict"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// AuthErr
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	return Err(http.StatusUnauthorized, msg, nil)
}
