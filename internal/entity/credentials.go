package entity

import (
	"fmt"
	"strings"
)

type AuthMode string

const (
	AuthModeBearer            AuthMode = "bearer"
	AuthModeClientCredentials AuthMode = "client_credentials"
)

type BearerToken struct {
	AccessToken string
}

type ClientCredentials struct {
	ClientID     string
	ClientSecret string
}

// Credentials holds exactly one of the two authentication variants.
type Credentials struct {
	Bearer *BearerToken
	OAuth  *ClientCredentials
}

func NewBearerCredentials(accessToken string) Credentials {
	return Credentials{Bearer: &BearerToken{AccessToken: accessToken}}
}

func NewClientCredentials(clientID, clientSecret string) Credentials {
	return Credentials{OAuth: &ClientCredentials{ClientID: clientID, ClientSecret: clientSecret}}
}

// Mode reports which variant is set. It fails with ErrInvalidCredentials unless exactly one
// variant is present and all of its fields are non-empty.
func (c Credentials) Mode() (AuthMode, error) {
	switch {
	case c.Bearer != nil && c.OAuth != nil:
		return "", fmt.Errorf("%w: both access token and client credentials given", ErrInvalidCredentials)
	case c.Bearer != nil:
		if strings.TrimSpace(c.Bearer.AccessToken) == "" {
			return "", fmt.Errorf("%w: empty access token", ErrInvalidCredentials)
		}

		return AuthModeBearer, nil
	case c.OAuth != nil:
		if strings.TrimSpace(c.OAuth.ClientID) == "" || strings.TrimSpace(c.OAuth.ClientSecret) == "" {
			return "", fmt.Errorf("%w: empty client id or client secret", ErrInvalidCredentials)
		}

		return AuthModeClientCredentials, nil
	default:
		return "", fmt.Errorf("%w: no credentials given", ErrInvalidCredentials)
	}
}

func (c Credentials) Validate() error {
	_, err := c.Mode()
	return err
}

// String never prints secrets.
func (c Credentials) String() string {
	mode, err := c.Mode()
	if err != nil {
		return "invalid"
	}

	if mode == AuthModeClientCredentials {
		return fmt.Sprintf("%s(%s)", mode, c.OAuth.ClientID)
	}

	return string(mode)
}
