// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// tsxChat server handlers and middleware.
//
// The Msg* constants are the message strings written into HTTP response
// envelopes.
package app

// Success messages.
const (
	MsgUserCreated      = "User created successfully"
	MsgLoginSuccessful  = "Login successful"
	MsgUserRetrieved    = "User retrieved successfully"
	MsgLoggedOut        = "Logged out successfully"
	MsgOnboardingStatus = "Onboarding status retrieved successfully"
	MsgOnboardingStep   = "Onboarding step updated successfully"
	MsgOnboardingDone   = "Onboarding completed successfully"
	MsgOnboardingReset  = "Onboarding reset successfully"
	MsgHelloWorld       = "Hello World!"
)

// Error messages.
const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgAllFieldsRequired is returned when a signup payload misses a field
	// or carries a malformed email.
	MsgAllFieldsRequired = "All fields are required"

	// MsgEmailPasswordRequired is returned when a login payload misses the
	// email or the password.
	MsgEmailPasswordRequired = "Email and password are required"

	// MsgInvalidDataProvided is returned when a payload fails validation
	// for any other reason.
	MsgInvalidDataProvided = "Invalid data provided"

	MsgUserAlreadyExists     = "User already exists"
	MsgInvalidEmailPassword  = "Invalid email or password"
	MsgUserNotFound          = "User not found"
	MsgTokenRequiredLogout   = "Token is required for logout"
	MsgInvalidExpiredSession = "Invalid or expired session"

	// Auth middleware rejections.
	MsgNotLoggedIn             = "You are not logged in! Please login"
	MsgTokenIsExpiredOrInvalid = "Invalid or expired token"
	MsgSessionInvalid          = "Session is invalid or user has logged out"
	MsgUserNoLongerExists      = "User no longer exists"

	MsgStepRequired              = "Step is required"
	MsgInvalidStep               = "Invalid step provided"
	MsgOnboardingNotFound        = "Onboarding record not found"
	MsgOnboardingStepsIncomplete = "All onboarding steps must be completed before marking as complete"

	// MsgTooManyRequests is returned by the per-IP rate limiter.
	MsgTooManyRequests = "Too many requests from this IP, try again later"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Something went wrong"

	// MsgRequestTimeout is returned when a request outlives the configured
	// request timeout.
	MsgRequestTimeout = "Request timed out"

	// MsgRouteNotFound is a format string taking the requested path.
	MsgRouteNotFound = "Cannot find %s on this server"
)
