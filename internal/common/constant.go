package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// MaxAttachmentSize is the upper bound for a single uploaded file (50 MiB).
const MaxAttachmentSize int64 = 50 * 1024 * 1024
