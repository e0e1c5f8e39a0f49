package entity

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthenticated = errors.New("unauthenticated")
)

var (
	// ErrInvalidCredentials means the caller passed zero or both credential variants, or an empty one.
	ErrInvalidCredentials = errors.New("invalid credentials: use client id and client secret, or access token")
	// ErrCredentialsNotConfigured means the configuration store has neither an access token nor a client pair.
	ErrCredentialsNotConfigured = errors.New("mercadopago credentials are not configured")
	// ErrAuthenticationFailure means the provider rejected the credentials.
	ErrAuthenticationFailure = errors.New("mercadopago authentication failure")
	// ErrTransport means the provider could not be reached.
	ErrTransport = errors.New("mercadopago transport error")
	// ErrMalformedPayload means a provider payment could not be decoded.
	ErrMalformedPayload = errors.New("malformed payment payload")
)
