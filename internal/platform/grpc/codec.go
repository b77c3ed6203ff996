package grpc

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype negotiated for game service messages.
// Requests sent with content-type application/grpc+msgpack are decoded by
// the codec registered under this name.
const CodecName = "msgpack"

// Codec marshals game wire messages with MessagePack.
type Codec struct{}

func init() {
	encoding.RegisterCodec(Codec{})
}

// CallOption selects the msgpack codec for one call.
func CallOption() gogrpc.CallOption {
	return gogrpc.CallContentSubtype(CodecName)
}

// Marshal encodes v.
func (Codec) Marshal(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("msgpack marshal %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal decodes data into v, which must be a pointer.
func (Codec) Unmarshal(data []byte, v any) error {
	if err := msgpack.Unmarshal(data, v); err != nil {
		return fmt.Errorf("msgpack unmarshal %T: %w", v, err)
	}
	return nil
}

// Name returns the registered content-subtype.
func (Codec) Name() string {
	return CodecName
}
