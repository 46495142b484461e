package mpdomain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("chave de API do marketplace inválida")
	ErrRateLimited  = errors.New("limite de requisições do marketplace atingido")
)

// ErrorResponse é o corpo de erro devolvido pela API do marketplace
type ErrorResponse struct {
	Title      string `json:"title"`
	Detail     string `json:"detail"`
	Code       string `json:"code"`
	StatusCode int    `json:"status"`
}

// APIError representa uma resposta não 2xx
type APIError struct {
	StatusCode int
	Endpoint   string
	Response   ErrorResponse
	Err        error
}

func (e *APIError) Error() string {
	msg := e.Response.Detail
	if msg == "" {
		msg = e.Response.Title
	}
	return fmt.Sprintf("marketplace %s respondeu %d: %s", e.Endpoint, e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
