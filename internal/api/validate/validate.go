package validate

import (
	"fmt"
	"regexp"
)

// usernameRx keeps usernames shell and URL safe.
var usernameRx = regexp.MustCompile(`^[a-z0-9_]{1,32}$`)

// dateRx and timeRx accept the wire formats the clients send. Both fields are
// free text to the matcher, so the checks stay shallow.
var (
	dateRx = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRx = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field, v string, limit int) error {
	if len(v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

// Username checks the login identifier shape.
func Username(v string) error {
	if v == "" {
		return fmt.Errorf("username is required")
	}
	if !usernameRx.MatchString(v) {
		return fmt.Errorf("username must be 1-32 lowercase letters, digits or underscore")
	}
	return nil
}

// Date accepts an empty value or YYYY-MM-DD.
func Date(field, v string) error {
	if v == "" {
		return nil
	}
	if !dateRx.MatchString(v) {
		return fmt.Errorf("%s must be YYYY-MM-DD", field)
	}
	return nil
}

// Time accepts an empty value, HH:MM or HH:MM:SS.
func Time(field, v string) error {
	if v == "" {
		return nil
	}
	if !timeRx.MatchString(v) {
		return fmt.Errorf("%s must be HH:MM or HH:MM:SS", field)
	}
	return nil
}

// Description bounds the matcher input.
func Description(v string) error {
	if err := NonEmpty("description", v); err != nil {
		return err
	}
	return MaxLen("description", v, 2000)
}
