package ruuid

import "errors"

var (
	// ErrInvalidLength indicates that a UUID string or byte slice has a length
	// other than the accepted 36-character, 32-character or 16-byte forms
	ErrInvalidLength = errors.New("ruuid: invalid UUID length")

	// ErrInvalidCharacter indicates a structural character problem in a UUID
	// string: a misplaced hyphen, or a separator where none is allowed
	ErrInvalidCharacter = errors.New("ruuid: invalid character in UUID string")

	// ErrInvalidHexDigit indicates that a two-character group could not be
	// parsed as a base-16 byte
	ErrInvalidHexDigit = errors.New("ruuid: invalid hex digit in UUID string")

	// ErrInvalidVersion indicates that the version field is not one of the
	// RFC 4122 versions 1 through 5
	ErrInvalidVersion = errors.New("ruuid: invalid or unsupported UUID version")

	// ErrInvalidVariant indicates that the variant bits match no known family
	ErrInvalidVariant = errors.New("ruuid: invalid UUID variant")

	// ErrUnsupportedPlatform indicates that the operating system cannot supply
	// the user or group id required for DCE-security generation
	ErrUnsupportedPlatform = errors.New("ruuid: platform cannot supply user/group id")

	// ErrEntropyUnavailable indicates that the random source could not be read
	ErrEntropyUnavailable = errors.New("ruuid: entropy source unavailable")

	// ErrMissingOrgID indicates that NewV2 was called with DomainOrg;
	// organization ids must be supplied explicitly via NewV2Org
	ErrMissingOrgID = errors.New("ruuid: org domain requires an explicit id, use NewV2Org")

	// ErrUnknownDomain indicates a DCE security domain outside person/group/org
	ErrUnknownDomain = errors.New("ruuid: unknown DCE security domain")
)
