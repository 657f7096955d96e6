package game

const (
	ErrorSettingsDecode     = "unable to decode settings file %s: %v"
	ErrorSettingsInvalid    = "invalid settings: %v"
	ErrorRecordingHeader    = "invalid recording header: %v"
	ErrorRecordingVersion   = "unsupported recording version %q (expected %q)"
	ErrorRecordingDesync    = "replay diverged at tick %d (digest %x, expected %x)"
	ErrorInvalidMovingState = "character left tick %d in invalid movement state %d"
)
