package linkmem

import (
	"fmt"
	"io"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// Describe renders rec as human readable lines for diagnostics.
func Describe(rec *LinkRecord) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeDescription(buf, rec)
	return buf.String()
}

// WriteDescription writes the same report as Describe to w.
func WriteDescription(w io.Writer, rec *LinkRecord) (int64, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeDescription(buf, rec)
	return buf.WriteTo(w)
}

func writeDescription(buf *bytebufferpool.ByteBuffer, rec *LinkRecord) {
	ctx := rec.Context()

	fmt.Fprintf(buf, "name: %s\n", rec.Name())
	fmt.Fprintf(buf, "description: %s\n", rec.DescriptionText())
	fmt.Fprintf(buf, "version: %d\n", rec.ProtocolVersion)
	fmt.Fprintf(buf, "tick: %d\n", rec.TickCounter)
	fmt.Fprintf(buf, "context (len %d): %x %s\n", rec.ContextLength, ctx, strconv.Quote(string(ctx)))
	fmt.Fprintf(buf, "identity: %s\n", rec.Identity())

	writeVector(buf, "avatar position", rec.AvatarPosition)
	writeVector(buf, "avatar front", rec.AvatarFront)
	writeVector(buf, "avatar top", rec.AvatarTop)
	writeVector(buf, "camera position", rec.CameraPosition)
	writeVector(buf, "camera front", rec.CameraFront)
	writeVector(buf, "camera top", rec.CameraTop)
}

func writeVector(buf *bytebufferpool.ByteBuffer, label string, v Vector3) {
	fmt.Fprintf(buf, "%s: (%g, %g, %g)\n", label, v[0], v[1], v[2])
}
