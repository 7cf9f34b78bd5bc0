package port

import "errors"

var ErrSessionNotFound = errors.New("reel session not found")
