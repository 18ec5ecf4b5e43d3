package serializer

import (
	"encoding/binary"
	"fmt"

	"github.com/dannuic/serial/lib/serial"
	"github.com/dannuic/serial/lib/store"
)

// NewBinarySerializer creates a serializer using a custom binary format
// optimized for speed and size. This is the canonical persistence format.
func NewBinarySerializer() store.ISerializer {
	return &binarySerializerImpl{}
}

// binarySerializerImpl implements store.ISerializer using a custom binary
// format:
//
//	[u32 LE member count]
//	per member, in name order:
//	  [u32 LE name len][name bytes][u8 tag][u32 LE data len][data bytes]
type binarySerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store.ISerializer)
// --------------------------------------------------------------------------

func (binarySerializerImpl) Serialize(s *store.Store) ([]byte, error) {
	names := s.Names()

	// calculate total size up front to avoid regrowth
	size := 4
	for _, name := range names {
		size += 4 + len(name) + 1 + 4 + len(s.Key(name).Data)
	}

	result := make([]byte, 0, size)
	result = binary.LittleEndian.AppendUint32(result, uint32(len(names)))

	for _, name := range names {
		m := s.Key(name)
		result = binary.LittleEndian.AppendUint32(result, uint32(len(name)))
		result = append(result, name...)
		result = append(result, byte(m.Tag))
		result = binary.LittleEndian.AppendUint32(result, uint32(len(m.Data)))
		result = append(result, m.Data...)
	}

	return result, nil
}

func (binarySerializerImpl) Deserialize(data []byte, s *store.Store) error {
	if len(data) < 4 {
		return fmt.Errorf("data too short for member count")
	}
	count := binary.LittleEndian.Uint32(data)
	pos := 4

	// decode into a staging list first so a malformed blob never leaves
	// the store half replaced
	type rawMember struct {
		name string
		tag  serial.Type
		data []byte
	}
	var members []rawMember

	for i := uint32(0); i < count; i++ {
		if pos+4 > len(data) {
			return fmt.Errorf("member %d: data too short for name length", i)
		}
		nameLen := int(binary.LittleEndian.Uint32(data[pos:]))
		pos += 4

		if pos+nameLen > len(data) {
			return fmt.Errorf("member %d: data too short for name", i)
		}
		name := string(data[pos : pos+nameLen])
		pos += nameLen

		if pos+1 > len(data) {
			return fmt.Errorf("member %q: data too short for tag", name)
		}
		tag := serial.Type(data[pos])
		pos++

		if pos+4 > len(data) {
			return fmt.Errorf("member %q: data too short for data length", name)
		}
		dataLen := int(binary.LittleEndian.Uint32(data[pos:]))
		pos += 4

		if pos+dataLen > len(data) {
			return fmt.Errorf("member %q: data too short for member data", name)
		}

		members = append(members, rawMember{
			name: name,
			tag:  tag,
			data: append([]byte(nil), data[pos:pos+dataLen]...),
		})
		pos += dataLen
	}

	if pos != len(data) {
		return fmt.Errorf("%d trailing bytes after %d members", len(data)-pos, count)
	}

	// the whole blob is valid, commit
	s.Clear()
	for _, rm := range members {
		m := s.Key(rm.name)
		m.Tag = rm.tag
		m.Data = rm.data
	}

	return nil
}
