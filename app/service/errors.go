package service

import "errors"

var (
	ErrConfigurationMissing       = errors.New("payment configuration missing")
	ErrProfileWriteFailed         = errors.New("profile write failed")
	ErrSignatureComputationFailed = errors.New("signature computation failed")
	ErrRedirectFailed             = errors.New("redirect failed")
	ErrVendorNotFound             = errors.New("vendor not found")
	ErrVendorAlreadyExists        = errors.New("vendor already exists")
	ErrPlanNotFound               = errors.New("plan not found")
	ErrPlanAlreadyActive          = errors.New("plan already active")
	ErrNoIntendedTier             = errors.New("no intended tier recorded")
	ErrCoverageExceedsPlan        = errors.New("coverage exceeds plan limits")
	ErrUnknownLocation            = errors.New("unknown location")
	ErrNoPaymentToken             = errors.New("no payment token on file")
	ErrGatewayRequestFailed       = errors.New("payment gateway request failed")
	ErrInvalidRequest             = errors.New("invalid request")
)
