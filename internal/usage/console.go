package usage

import "fmt"

// InvalidConfigKey is returned when a config key is not recognised.
func InvalidConfigKey(key string) *Error {
	return New(ErrInvalidConfigKey, fmt.Sprintf("brig: '%s' is not a valid config key. See 'brig config list'.", key))
}

// InvalidTheme is returned when a theme name is not one of the built-ins.
func InvalidTheme(name string) *Error {
	return New(ErrInvalidTheme, fmt.Sprintf("brig: unknown theme '%s'. See 'brig theme list'.", name))
}

// UnknownUser is returned when a command names a user that is not registered.
func UnknownUser(name string) *Error {
	return New(ErrUnknownUser, fmt.Sprintf("brig: no user named '%s'. See 'brig user list'.", name))
}

// PermissionDenied is returned when a source lacks the level a command needs.
func PermissionDenied(user string, need int) *Error {
	return New(ErrPermissionDenied, fmt.Sprintf("brig: %s needs permission level %d", user, need))
}

// CommandFailed marks a handler failure that sibling forks may tolerate.
func CommandFailed(format string, args ...any) *Error {
	return New(ErrCommandFailed, "brig: "+fmt.Sprintf(format, args...))
}
