package credentials

import "errors"

var (
	ErrNotFound           = errors.New("credentials: not found")
	ErrMissingCredentials = errors.New("credentials: url has no embedded credentials")
	ErrCorruptCredential  = errors.New("credentials: corrupt auth entry")
	ErrDecode             = errors.New("credentials: failed to deserialize auth file")
	ErrEncode             = errors.New("credentials: failed to serialize auth file")
)
