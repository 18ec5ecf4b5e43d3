package serializer

import (
	"github.com/dannuic/serial/lib/store"
	"github.com/fxamacker/cbor/v2"
)

// NewCBORSerializer creates a serializer using CBOR encoding: compact,
// self-describing, and readable by non-Go consumers.
func NewCBORSerializer() store.ISerializer {
	return &cborSerializerImpl{}
}

// cborSerializerImpl implements store.ISerializer using CBOR encoding
type cborSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store.ISerializer)
// --------------------------------------------------------------------------

func (cborSerializerImpl) Serialize(s *store.Store) ([]byte, error) {
	return cbor.Marshal(toBlob(s))
}

func (cborSerializerImpl) Deserialize(b []byte, s *store.Store) error {
	var blob map[string]blobMember
	if err := cbor.Unmarshal(b, &blob); err != nil {
		return err
	}
	fromBlob(blob, s)
	return nil
}
