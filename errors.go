package wmapro

import "errors"

var (
	// ErrInvalidData is returned when the bitstream violates the format:
	// broken tile headers, overflowing coefficient runs, bad length
	// prefixes or a detected packet loss. The decoder stays usable and
	// resynchronizes on the next packet.
	ErrInvalidData = errors.New("wmapro: invalid bitstream data")

	// ErrUnsupportedConfig is returned by NewDecoder for streams the
	// decoder cannot handle, such as more than 8 channels or sample rates
	// above 96 kHz.
	ErrUnsupportedConfig = errors.New("wmapro: unsupported stream configuration")
)
