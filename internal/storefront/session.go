package storefront

import "fmt"

// Session identifies the shopper on whose behalf a controller operation runs
type Session struct {
	UserID uint   `yaml:"user_id"`
	Token  string `yaml:"token"`
}

// Valid reports whether the session carries both an identity and a token
func (s Session) Valid() bool {
	return s.UserID != 0 && s.Token != ""
}

func (s Session) require() error {
	if !s.Valid() {
		return fmt.Errorf("%w: no active session", ErrUnauthorized)
	}
	return nil
}
