// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// OnboardingStep identifies one step of the onboarding flow.
// The set of steps is closed: [StepWelcome], [StepProfile], [StepPreferences].
type OnboardingStep string

const (
	StepWelcome     OnboardingStep = "welcome"
	StepProfile     OnboardingStep = "profile"
	StepPreferences OnboardingStep = "preferences"
)

// OnboardingSteps lists every known step in flow order.
var OnboardingSteps = []OnboardingStep{StepWelcome, StepProfile, StepPreferences}

// IsValid reports whether s is one of the known steps.
func (s OnboardingStep) IsValid() bool {
	for _, step := range OnboardingSteps {
		if s == step {
			return true
		}
	}
	return false
}

// Theme is the UI colour scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Onboarding tracks the onboarding progress of a single user.
// There is at most one record per user.
type Onboarding struct {
	ID          int64           `json:"id"`
	UserID      string          `json:"user"`
	IsCompleted bool            `json:"isCompleted"`
	Steps       OnboardingState `json:"steps"`
	ProfileData ProfileData     `json:"profileData"`
	Preferences Preferences     `json:"preferences"`
	CompletedAt *time.Time      `json:"completedAt"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Onboarding model.
func (o Onboarding) TableName() string {
	return "onboarding"
}

// OnboardingState holds the completion flag of every step.
type OnboardingState struct {
	Welcome     bool `json:"welcome"`
	Profile     bool `json:"profile"`
	Preferences bool `json:"preferences"`
}

// ProfileData is the profile information collected by the profile step.
type ProfileData struct {
	Avatar    *string  `json:"avatar"`
	Bio       string   `json:"bio,omitempty"`
	Interests []string `json:"interests"`
}

// Preferences is the settings block collected by the preferences step.
type Preferences struct {
	Theme         Theme         `json:"theme"`
	Notifications Notifications `json:"notifications"`
	Privacy       Privacy       `json:"privacy"`
}

// Notifications are the notification channel toggles.
type Notifications struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	Sound bool `json:"sound"`
}

// Privacy are the privacy toggles visible to other users.
type Privacy struct {
	ShowOnlineStatus    bool `json:"showOnlineStatus"`
	ShowLastSeen        bool `json:"showLastSeen"`
	AllowDirectMessages bool `json:"allowDirectMessages"`
}

// DefaultPreferences returns the preferences every new record starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme: ThemeSystem,
		Notifications: Notifications{
			Email: true,
			Push:  true,
			Sound: true,
		},
		Privacy: Privacy{
			ShowOnlineStatus:    true,
			ShowLastSeen:        true,
			AllowDirectMessages: true,
		},
	}
}

// NewOnboarding returns a fresh record for userID with every step pending
// and default preferences.
func NewOnboarding(userID string) Onboarding {
	return Onboarding{
		UserID:      userID,
		ProfileData: ProfileData{Interests: []string{}},
		Preferences: DefaultPreferences(),
	}
}

// MarkStep flags step as done. Unknown steps are ignored.
func (o *Onboarding) MarkStep(step OnboardingStep) {
	switch step {
	case StepWelcome:
		o.Steps.Welcome = true
	case StepProfile:
		o.Steps.Profile = true
	case StepPreferences:
		o.Steps.Preferences = true
	}
}

// AllStepsCompleted reports whether every step has been marked.
func (o *Onboarding) AllStepsCompleted() bool {
	return o.Steps.Welcome && o.Steps.Profile && o.Steps.Preferences
}

// Complete marks the whole flow as finished at the given time.
func (o *Onboarding) Complete(at time.Time) {
	o.IsCompleted = true
	o.CompletedAt = &at
}

// Reset clears step progress and completion. Collected profile data and
// preferences are kept.
func (o *Onboarding) Reset() {
	o.IsCompleted = false
	o.Steps = OnboardingState{}
	o.CompletedAt = nil
}

// OnboardingStepRequest is the body of PATCH /api/onboarding/step.
// Data is decoded according to Step: [ProfileDataUpdate] for the profile
// step, [PreferencesUpdate] for the preferences step, ignored otherwise.
type OnboardingStepRequest struct {
	Step OnboardingStep  `json:"step"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ProfileDataUpdate is a partial update of [ProfileData].
// Only non-nil fields are applied.
type ProfileDataUpdate struct {
	Avatar    *string   `json:"avatar,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Interests *[]string `json:"interests,omitempty"`
}

// PreferencesUpdate is a partial update of [Preferences].
// Only non-nil fields are applied.
type PreferencesUpdate struct {
	Theme         *Theme               `json:"theme,omitempty"`
	Notifications *NotificationsUpdate `json:"notifications,omitempty"`
	Privacy       *PrivacyUpdate       `json:"privacy,omitempty"`
}

// NotificationsUpdate is a partial update of [Notifications].
type NotificationsUpdate struct {
	Email *bool `json:"email,omitempty"`
	Push  *bool `json:"push,omitempty"`
	Sound *bool `json:"sound,omitempty"`
}

// PrivacyUpdate is a partial update of [Privacy].
type PrivacyUpdate struct {
	ShowOnlineStatus    *bool `json:"showOnlineStatus,omitempty"`
	ShowLastSeen        *bool `json:"showLastSeen,omitempty"`
	AllowDirectMessages *bool `json:"allowDirectMessages,omitempty"`
}

// ApplyProfile merges the non-nil fields of upd into the profile data.
func (o *Onboarding) ApplyProfile(upd ProfileDataUpdate) {
	if upd.Avatar != nil {
		o.ProfileData.Avatar = upd.Avatar
	}
	if upd.Bio != nil {
		o.ProfileData.Bio = *upd.Bio
	}
	if upd.Interests != nil {
		o.ProfileData.Interests = *upd.Interests
	}
}

// ApplyPreferences merges the non-nil fields of upd into the preferences.
func (o *Onboarding) ApplyPreferences(upd PreferencesUpdate) {
	if upd.Theme != nil {
		o.Preferences.Theme = *upd.Theme
	}

	if n := upd.Notifications; n != nil {
		setBool(&o.Preferences.Notifications.Email, n.Email)
		setBool(&o.Preferences.Notifications.Push, n.Push)
		setBool(&o.Preferences.Notifications.Sound, n.Sound)
	}

	if p := upd.Privacy; p != nil {
		setBool(&o.Preferences.Privacy.ShowOnlineStatus, p.ShowOnlineStatus)
		setBool(&o.Preferences.Privacy.ShowLastSeen, p.ShowLastSeen)
		setBool(&o.Preferences.Privacy.AllowDirectMessages, p.AllowDirectMessages)
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
