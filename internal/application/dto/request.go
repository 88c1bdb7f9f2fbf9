package dto

import (
	"errors"
	"strconv"
	"strings"
)

// GetAssetsRequest carries the parsed query parameters for the asset list
// endpoint.
type GetAssetsRequest struct {
	Limit int
}

// NewGetAssetsRequest parses the optional `limit` query parameter. An empty
// value means "all configured symbols" and is encoded as 0.
func NewGetAssetsRequest(limitParam string) (*GetAssetsRequest, error) {
	if limitParam == "" {
		return &GetAssetsRequest{Limit: 0}, nil
	}

	limit, err := strconv.Atoi(limitParam)
	if err != nil {
		return nil, errors.New("limit must be an integer")
	}
	if limit < 1 {
		return nil, errors.New("limit must be at least 1")
	}
	return &GetAssetsRequest{Limit: limit}, nil
}

// LoginRequest is the credentials payload for POST /api/v1/auth/login
// @Description Login credentials
type LoginRequest struct {
	Username string `json:"username" example:"admin" validate:"required"`
	Password string `json:"password" example:"secret" validate:"required"`
}

// Validate checks that both fields are present
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// SaveCardOrderRequest is the payload for PUT /api/v1/preferences/cards
// @Description Ordered list of dashboard card ids
type SaveCardOrderRequest struct {
	IDs []string `json:"ids" example:"bitcoin,ethereum,solana" validate:"required,min=1"`
}

// Validate checks the ordering is non-empty with no blank or duplicate ids
func (r *SaveCardOrderRequest) Validate() error {
	if len(r.IDs) == 0 {
		return errors.New("ids must contain at least one entry")
	}
	seen := make(map[string]bool, len(r.IDs))
	for _, id := range r.IDs {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" {
			return errors.New("ids must not contain blank entries")
		}
		if seen[trimmed] {
			return errors.New("ids must not contain duplicates: " + trimmed)
		}
		seen[trimmed] = true
	}
	return nil
}
