package wire

import "github.com/google/uuid"

// GUIDSize is the encoded size of a GUID field.
const GUIDSize = 16

// putGUID writes id into dst using the mixed-endian layout.
func putGUID(dst []byte, id uuid.UUID) {
	dst[0], dst[1], dst[2], dst[3] = id[3], id[2], id[1], id[0]
	dst[4], dst[5] = id[5], id[4]
	dst[6], dst[7] = id[7], id[6]
	copy(dst[8:], id[8:])
}

// parseGUID is the inverse of putGUID.
func parseGUID(src []byte) uuid.UUID {
	var id uuid.UUID
	id[0], id[1], id[2], id[3] = src[3], src[2], src[1], src[0]
	id[4], id[5] = src[5], src[4]
	id[6], id[7] = src[7], src[6]
	copy(id[8:], src[8:GUIDSize])
	return id
}
