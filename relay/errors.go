package relay

import "errors"

// Sentinel errors returned by the relay.
var (
	// ErrInvalidConfig is returned by LoadConfig and Config.Validate when the
	// configuration cannot be used.
	ErrInvalidConfig = errors.New("relay: invalid configuration")

	// ErrUnsupportedFormat is returned by Encode for an unknown body format.
	ErrUnsupportedFormat = errors.New("relay: unsupported body format")

	// ErrInvalidHash is returned when a route token hash cannot be parsed.
	ErrInvalidHash = errors.New("relay: invalid or unrecognised token hash")

	// ErrMacroResult is returned by ApplyMacros when a macro does not return
	// a collection.
	ErrMacroResult = errors.New("relay: macro did not return a collection")

	// ErrInvalidSealKey is returned when a route seal_key is not a base64
	// AES-256 key.
	ErrInvalidSealKey = errors.New("relay: invalid seal key")

	// ErrSealBroken is returned by Open when a sealed body cannot be
	// authenticated.
	ErrSealBroken = errors.New("relay: sealed body could not be opened")

	// ErrDeliveryFailed is returned by Forwarder.Forward once every attempt
	// has failed.
	ErrDeliveryFailed = errors.New("relay: delivery failed")
)
