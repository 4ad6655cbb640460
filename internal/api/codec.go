// Package api defines the shelfkeeper gRPC contract: request and response
// messages, the UserDirectory service descriptor, and a typed client.
//
// Messages are plain Go structs carried by a JSON codec registered with
// grpc-go under the "json" content subtype; callers built with
// NewUserDirectoryClient select it automatically.
package api

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype for this API ("application/grpc+json").
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return CodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
