// Package api is the wire contract between the lifeweeks server and its
// clients: plain Go message types carried over gRPC with a JSON codec.
package api

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype every call uses.
const CodecName = "json"

// MaxMessageSize fits a 50 MiB attachment after base64 expansion.
const MaxMessageSize = 80 * 1024 * 1024

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return CodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
