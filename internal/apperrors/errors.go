package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the presented refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrRefreshTokenRevoked indicates a refresh token that verifies cryptographically but no
// longer matches the stored value: it was already rotated or cleared by a logout. Handlers
// report it as an authorization failure, but it stays distinct so a revocation alerting
// hook can consume it without re-deriving it from an expiry failure.
var ErrRefreshTokenRevoked = errors.New("refresh token revoked")
