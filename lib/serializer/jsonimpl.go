package serializer

import (
	"encoding/json"

	"github.com/dannuic/serial/lib/serial"
	"github.com/dannuic/serial/lib/store"
)

// NewJSONSerializer creates a serializer using json encoding. Member
// payloads are base64-encoded by the json package.
func NewJSONSerializer() store.ISerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements store.ISerializer using json encoding
type jsonSerializerImpl struct {
}

// blobMember is the interchange representation of one serialized member.
// It is shared with the CBOR implementation.
type blobMember struct {
	Tag  uint8  `json:"tag" cbor:"1,keyasint"`
	Data []byte `json:"data" cbor:"2,keyasint"`
}

// toBlob collects the store into the interchange map.
func toBlob(s *store.Store) map[string]blobMember {
	blob := make(map[string]blobMember, s.Len())
	for _, name := range s.Names() {
		m := s.Key(name)
		blob[name] = blobMember{Tag: uint8(m.Tag), Data: m.Data}
	}
	return blob
}

// fromBlob replaces the store contents with the interchange map.
func fromBlob(blob map[string]blobMember, s *store.Store) {
	s.Clear()
	for name, bm := range blob {
		m := s.Key(name)
		m.Tag = serial.Type(bm.Tag)
		m.Data = bm.Data
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store.ISerializer)
// --------------------------------------------------------------------------

func (jsonSerializerImpl) Serialize(s *store.Store) ([]byte, error) {
	return json.Marshal(toBlob(s))
}

func (jsonSerializerImpl) Deserialize(b []byte, s *store.Store) error {
	var blob map[string]blobMember
	if err := json.Unmarshal(b, &blob); err != nil {
		return err
	}
	fromBlob(blob, s)
	return nil
}
