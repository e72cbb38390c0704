package linkmem

import (
	"errors"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/webbmaffian/go-linkmem/internal/utils"
)

// Producer owns a segment: it creates it when missing, publishes avatar
// state into it and unlinks it on Close. Consumers attach with a Binding.
type Producer struct {
	name string
	path string
	data mmap.MMap
	file *os.File
	rec  *LinkRecord
}

// CreateProducer opens the segment "{name}.{uid}", creating it sized to
// RecordSize if it does not exist yet, and marks it as protocol version 2.
func CreateProducer(name string, opts ...Option) (p *Producer, err error) {
	c, err := newConfig(name, opts)

	if err != nil {
		return
	}

	p = &Producer{
		name: name,
		path: c.segmentPath(name),
	}

	var created bool
	info, err := os.Stat(p.path)

	if err == nil {
		if p.file, err = os.OpenFile(p.path, os.O_RDWR, 0); err != nil {
			return nil, &BindError{Name: name, Path: p.path, Reason: bindReason(err), Err: err}
		}

		if info.Size() < RecordSize {
			err = p.file.Truncate(RecordSize)
		}
	} else if os.IsNotExist(err) {
		if p.file, err = os.OpenFile(p.path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600); err != nil {
			return nil, &BindError{Name: name, Path: p.path, Reason: bindReason(err), Err: err}
		}

		created = true
		err = p.file.Truncate(RecordSize)
	} else {
		return nil, &BindError{Name: name, Path: p.path, Reason: bindReason(err), Err: err}
	}

	// A segment we created but could not set up must not be left behind
	// for consumers to find.
	fail := func(err error) (*Producer, error) {
		p.file.Close()

		if created {
			os.Remove(p.path)
		}

		return nil, &MapError{Name: name, Path: p.path, Err: err}
	}

	if err != nil {
		return fail(err)
	}

	if p.data, err = mapRegion(p.file, RecordSize, mmap.RDWR, 0, 0); err != nil {
		return fail(err)
	}

	var ok bool

	if p.rec, ok = utils.BytesToPointer[LinkRecord](p.data); !ok {
		p.data.Unmap()
		return fail(ErrSegmentTooSmall)
	}

	p.rec.ProtocolVersion = ProtocolVersion2
	p.rec.AvatarTop = Vector3{0, 1, 0}
	p.mirrorCamera()

	return
}

func (p *Producer) Name() string {
	return p.name
}

func (p *Producer) Path() string {
	return p.path
}

// Record returns the live view of the produced segment.
func (p *Producer) Record() *LinkRecord {
	return p.rec
}

func (p *Producer) SetName(name string) {
	p.rec.SetName(name)
}

func (p *Producer) SetDescription(description string) {
	p.rec.SetDescription(description)
}

func (p *Producer) SetIdentity(identity string) {
	p.rec.SetIdentity(identity)
}

func (p *Producer) SetContext(b []byte) error {
	return p.rec.SetContext(b)
}

// SetPosition places the avatar on the horizontal plane at (x, 0, y).
func (p *Producer) SetPosition(x, y float32) {
	p.rec.AvatarPosition = Vector3{x, 0, y}
	p.mirrorCamera()
}

// SetRotation points the avatar front vector at the given heading.
func (p *Producer) SetRotation(degrees float64) {
	r := degrees * math.Pi / 180
	p.rec.AvatarFront = Vector3{float32(math.Cos(r)), 0, float32(math.Sin(r))}
	p.mirrorCamera()
}

// Tick advances the tick counter; consumers use it to notice fresh data.
func (p *Producer) Tick() uint32 {
	p.rec.TickCounter++
	return p.rec.TickCounter
}

// The camera follows the avatar.
func (p *Producer) mirrorCamera() {
	p.rec.CameraPosition = p.rec.AvatarPosition
	p.rec.CameraFront = p.rec.AvatarFront
	p.rec.CameraTop = p.rec.AvatarTop
}

func (p *Producer) Flush() error {
	return p.data.Flush()
}

// Close unmaps and unlinks the segment.
func (p *Producer) Close() (err error) {
	if p.rec == nil {
		return
	}

	p.rec = nil
	err = errors.Join(p.data.Unmap(), p.file.Close(), os.Remove(p.path))
	p.data, p.file = nil, nil
	return
}
