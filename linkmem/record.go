// Package linkmem binds to "linked memory" shared segments, the fixed
// layout used by positional audio producers, and copies records between them.
package linkmem

import (
	"unsafe"
)

const (
	// ProtocolVersion2 marks a record whose name and description are populated.
	ProtocolVersion2 = 2

	NameCapacity        = 256
	IdentityCapacity    = 256
	ContextCapacity     = 256
	DescriptionCapacity = 2048

	// RecordSize is the size of the shared segment every participant maps.
	RecordSize = 10580
)

// WChar is a single wchar_t as laid out by Linux producers (UTF-32).
type WChar uint32

type Vector3 [3]float32

// LinkRecord is the cross-process layout of the linked memory. Field order and
// sizes must not change; other processes map the same bytes.
type LinkRecord struct {
	ProtocolVersion uint32
	TickCounter     uint32
	AvatarPosition  Vector3
	AvatarFront     Vector3
	AvatarTop       Vector3
	AvatarName      [NameCapacity]WChar
	CameraPosition  Vector3
	CameraFront     Vector3
	CameraTop       Vector3
	AvatarIdentity  [IdentityCapacity]WChar
	ContextLength   uint32
	ContextBytes    [ContextCapacity]byte
	Description     [DescriptionCapacity]WChar
}

// Fails to compile if the layout drifts from RecordSize in either direction.
var (
	_ [RecordSize - unsafe.Sizeof(LinkRecord{})]struct{}
	_ [unsafe.Sizeof(LinkRecord{}) - RecordSize]struct{}
)

func (r *LinkRecord) Name() string {
	return WideString(r.AvatarName[:])
}

func (r *LinkRecord) SetName(name string) {
	SetWideString(r.AvatarName[:], name)
}

func (r *LinkRecord) Identity() string {
	return WideString(r.AvatarIdentity[:])
}

func (r *LinkRecord) SetIdentity(identity string) {
	SetWideString(r.AvatarIdentity[:], identity)
}

func (r *LinkRecord) DescriptionText() string {
	return WideString(r.Description[:])
}

func (r *LinkRecord) SetDescription(description string) {
	SetWideString(r.Description[:], description)
}

// Context returns the valid part of the context blob. A declared length
// beyond the buffer is clamped.
func (r *LinkRecord) Context() []byte {
	n := r.ContextLength

	if n > ContextCapacity {
		n = ContextCapacity
	}

	return r.ContextBytes[:n]
}

// SetContext writes b as the context blob and updates the length.
func (r *LinkRecord) SetContext(b []byte) error {
	if len(b) > ContextCapacity {
		return &ContextLengthError{Length: uint64(len(b))}
	}

	n := copy(r.ContextBytes[:], b)
	clear(r.ContextBytes[n:])
	r.ContextLength = uint32(n)
	return nil
}
