package linkmem

// Sync copies the tick, spatial vectors, identity and context of source into
// destination. Name and description are copied once, when destination is
// first upgraded to protocol version 2.
//
// An out of range source context length is reported as a
// *ContextLengthError after every other field has been copied.
func Sync(source, destination *Binding) error {
	if destination.Mode() == ReadOnly {
		return ErrDestinationReadOnly
	}

	dst, err := destination.Record()

	if err != nil {
		return ErrDestinationNotBound
	}

	src, err := source.Record()

	if err != nil {
		return ErrSourceNotBound
	}

	return SyncRecords(dst, src)
}

// SyncRecords applies the copy policy of Sync to two records directly.
// Fields of src are read with plain loads while its producer may be writing,
// so dst can end up with fields from two different ticks.
func SyncRecords(dst, src *LinkRecord) error {
	if dst.ProtocolVersion != ProtocolVersion2 && src.ProtocolVersion == ProtocolVersion2 {
		copyWide(dst.AvatarName[:], src.AvatarName[:])
		copyWide(dst.Description[:], src.Description[:])
		dst.ProtocolVersion = ProtocolVersion2
	}

	dst.TickCounter = src.TickCounter

	dst.AvatarFront = src.AvatarFront
	dst.AvatarTop = src.AvatarTop
	dst.AvatarPosition = src.AvatarPosition

	dst.CameraPosition = src.CameraPosition
	dst.CameraFront = src.CameraFront
	dst.CameraTop = src.CameraTop

	copyWide(dst.AvatarIdentity[:], src.AvatarIdentity[:])

	// Read once; the producer may change it under us.
	n := src.ContextLength

	if n > ContextCapacity {
		return &ContextLengthError{Length: uint64(n)}
	}

	copy(dst.ContextBytes[:n], src.ContextBytes[:n])
	dst.ContextLength = n
	return nil
}
