package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// An internal Error details.
// Mirrors the remote admin API failure body.
type Error struct {
	// Unique error occurrence id ; OPTIONAL
	Id string `json:"id,omitempty"`
	// HTTP status code class
	Code int32 `json:"code,omitempty"`
	// Canonical status text, e.g.: "UNAUTHORIZED"
	Status string `json:"status,omitempty"`
	// Human-readable details
	Message string `json:"message,omitempty"`
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	if err == nil {
		return ""
	}
	data, re := json.Marshal(err)
	if re != nil {
		return err.Message
	}
	return string(data)
}

func (err *Error) String() string {

	if err == nil {
		return ""
	}

	var (
		indent string
		format strings.Builder
	)
	defer format.Reset()

	if err.Code > 0 {
		fmt.Fprintf(&format, "(#%d)", err.Code)
		indent = " "
	}

	if err.Status != "" {
		format.WriteString(indent)
		format.WriteString(err.Status)
		indent = " ; "
	}

	if err.Message != "" {
		format.WriteString(indent)
		format.WriteString(err.Message)
	}

	return format.String()
}

// remote API failure body variants:
// {"error":"text"} | {"message":"text"} | {"code":409,"status":"..","message":".."}
type wireError struct {
	Id      string `json:"id"`
	Code    int32  `json:"code"`
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Parse tries to parse a JSON string into an error. If that
// fails, it will set the given string as the error detail.
func Parse(message string) (err *Error, ok bool) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, true
	}
	src := new(wireError)
	der := json.Unmarshal(
		[]byte(message), src,
	)
	if der != nil || (src.Error == "" && src.Message == "") {
		// NOT JSON -or- no details recognized
		return Errorf("%s", message), (der == nil)
	}
	err = &Error{
		Id:      src.Id,
		Code:    src.Code,
		Status:  src.Status,
		Message: src.Message,
	}
	if err.Message == "" {
		err.Message = src.Error
	}
	return err, true
}

func FromError(src error) (err *Error, ok bool) {
	if src == nil {
		return nil, true
	}
	switch src := src.(type) {
	case *Error:
		{
			return src, true
		}
	}
	return Parse(src.Error())
}

type Option func(err *Error)

// Error.Id Option
func Id(id string) Option {
	return func(err *Error) {
		if id != "" {
			err.Id = id
		}
	}
}

// Error.Code Option
func Code(code int32) Option {
	return func(err *Error) {
		if code > 0 {
			err.Code = code
		}
	}
}

// Error.Status Option
func Status(code string) Option {
	return func(err *Error) {
		if code != "" {
			err.Status = code
		}
	}
}

func Message(form string, args ...any) Option {
	return func(err *Error) {
		text := form
		if len(args) > 0 {
			if form == "" {
				text = fmt.Sprint(args...)
			} else {
				text = fmt.Sprintf(form, args...)
			}
		}
		err.Message = text
	}
}

func New(opts ...Option) (err *Error) {
	err = &Error{}
	err.init(opts)
	return // err
}

func (err *Error) init(opts []Option) {
	for _, setup := range opts {
		setup(err)
	}
}

func Errorf(message string, args ...any) *Error {
	return New(Message(message, args...))
}

// (#400) BAD_REQUEST
//
//	 New(
//		Status("BAD_REQUEST"),
//		Code(http.StatusBadRequest),
//		opts...,
//	)
func BadRequest(opts ...Option) *Error {
	err := New(
		Status("BAD_REQUEST"),
		Code(http.StatusBadRequest),
	)
	err.init(opts)
	return err
}

// (#401) UNAUTHORIZED
//
//	 New(
//		Status("UNAUTHORIZED"),
//		Code(http.StatusUnauthorized),
//		opts...,
//	)
func Unauthorized(opts ...Option) *Error {
	err := New(
		Status("UNAUTHORIZED"),
		Code(http.StatusUnauthorized),
	)
	err.init(opts)
	return err
}

// (#403) FORBIDDEN
//
//	 New(
//		Status("FORBIDDEN"),
//		Code(http.StatusForbidden),
//		opts...,
//	)
func Forbidden(opts ...Option) *Error {
	err := New(
		Status("FORBIDDEN"),
		Code(http.StatusForbidden),
	)
	err.init(opts)
	return err
}

// (#404) NOT_FOUND
//
//	 New(
//		Status("NOT_FOUND"),
//		Code(http.StatusNotFound),
//		opts...,
//	)
func NotFound(opts ...Option) *Error {
	err := New(
		Status("NOT_FOUND"),
		Code(http.StatusNotFound),
	)
	err.init(opts)
	return err
}
