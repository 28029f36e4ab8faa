package utils

import (
	"time"
)

// Token and session time constants
const (
	// AccessTokenTTL is the time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// AccessTokenTTLSeconds is the time-to-live for access tokens in seconds (86400 seconds = 24 hours)
	AccessTokenTTLSeconds = 86400

	// RefreshTokenTTL is the time-to-live for refresh tokens (7 days)
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// ContextKey is the type for request-scoped context values
type ContextKey string

// Request context keys set by handlers for downstream flows
const (
	RequestIDKey  ContextKey = "request_id"
	UserAgentKey  ContextKey = "user_agent"
	IPAddressKey  ContextKey = "ip_address"
	EndpointKey   ContextKey = "endpoint"
	TimeoutKey    ContextKey = "timeout"
	CancelFuncKey ContextKey = "cancel_func"
)

// Pricing platform constants
const (
	// HistoryWindowDays is how far back the recommendation flow loads
	// historical records relative to the target date (90 days)
	HistoryWindowDays = 90

	// MaxRecommendationHorizonDays is how far into the future a target
	// date may lie (365 days)
	MaxRecommendationHorizonDays = 365

	// MaxImportBatchSize caps one historical data import request
	MaxImportBatchSize = 1000

	// DefaultCurrency is assumed when a hotel does not specify one
	DefaultCurrency = "EUR"
)
