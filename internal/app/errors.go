package app

import "errors"

// ErrNotSignedIn is returned by operations that need a current user
var ErrNotSignedIn = errors.New("not signed in")
