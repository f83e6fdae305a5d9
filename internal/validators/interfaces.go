// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the
// services. Implementations use ozzo-validation rules and report failures
// wrapped in the sentinels from errors.go, so callers can pick the
// response message with errors.Is.
//
// [AuthValidator] covers signup and login payloads; [OnboardingValidator]
// covers onboarding step updates.
package validators

import "context"

// Validator validates a payload. The optional field names narrow the check
// to a subset of fields; current implementations ignore them.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
