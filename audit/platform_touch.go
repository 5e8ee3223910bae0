//go:build !darwin || ios

package audit

// DefaultPlatform is the platform of the build target.
var DefaultPlatform = Touch
