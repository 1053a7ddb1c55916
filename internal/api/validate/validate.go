package validate

import (
	"regexp"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]{1,15}$`)
	passwordRe = regexp.MustCompile(`^\S{6,20}$`)
)

// Username enforces 1-15 alphanumeric characters.
func Username(v string) *ErrField {
	if !usernameRe.MatchString(v) {
		return &ErrField{Field: "username", Msg: "must be 1-15 letters or digits"}
	}
	return nil
}

// Password enforces 6-20 non-whitespace characters.
func Password(v string) *ErrField {
	if !passwordRe.MatchString(v) {
		return &ErrField{Field: "password", Msg: "must be 6-20 non-whitespace characters"}
	}
	return nil
}

// Credentials validates a username/password pair and returns nil or an Errs
// listing every failed field.
func Credentials(username, password string) error {
	var errs Errs
	if ef := Username(username); ef != nil {
		errs = append(errs, *ef)
	}
	if ef := Password(password); ef != nil {
		errs = append(errs, *ef)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
