package config

import "errors"

var (
	ErrMissingBackendURL = errors.New("BACKEND_BASE_URL is required")
	ErrMissingRedisAddr  = errors.New("REDIS_ADDR is required when SESSION_STORE=redis")
)
