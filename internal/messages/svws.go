package messages

// SVWS client messages for requests against the school server.
const (
	// SvwsCreateRequestErrFmt formats request construction failures.
	SvwsCreateRequestErrFmt = "create request: %w"
	SvwsRequestFailedFmt    = "request %s %s: %w"
	SvwsDecodeResponseFmt   = "decode response from %s: %w"
	SvwsNoCreatedIDFmt      = "create response from %s carries no id"
)
