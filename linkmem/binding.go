package linkmem

import (
	"errors"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/webbmaffian/go-linkmem/internal/utils"
)

// mapRegion is replaced in tests to simulate mmap failures.
var mapRegion = mmap.MapRegion

type Mode int

const (
	ReadOnly Mode = iota
	ReadWrite
)

func (m Mode) String() string {
	if m == ReadWrite {
		return "read-write"
	}

	return "read-only"
}

// Binding attaches the process to an existing named segment and exposes it
// as a LinkRecord. It never creates, resizes or unlinks the segment.
//
// No locking is done around the mapped memory. Other processes may write it
// at any time, so reads are not guaranteed to observe a single tick.
type Binding struct {
	name string
	path string
	mode Mode
	data mmap.MMap
	file *os.File
	rec  *LinkRecord
}

// New prepares a binding for the segment "{name}.{uid}". Nothing is opened
// until Bind is called.
func New(name string, mode Mode, opts ...Option) (b *Binding, err error) {
	c, err := newConfig(name, opts)

	if err != nil {
		return
	}

	b = &Binding{
		name: name,
		path: c.segmentPath(name),
		mode: mode,
	}

	return
}

// Bind opens the segment and maps exactly RecordSize bytes of it. On failure
// the binding stays unbound and Bind may be called again.
func (b *Binding) Bind() (err error) {
	if b.IsBound() {
		return ErrAlreadyBound
	}

	flag, prot := os.O_RDONLY, mmap.RDONLY

	if b.mode == ReadWrite {
		flag, prot = os.O_RDWR, mmap.RDWR
	}

	file, err := os.OpenFile(b.path, flag, 0)

	if err != nil {
		return &BindError{Name: b.name, Path: b.path, Reason: bindReason(err), Err: err}
	}

	data, err := b.mapRecord(file, prot)

	if err != nil {
		file.Close()
		return &MapError{Name: b.name, Path: b.path, Err: err}
	}

	rec, ok := utils.BytesToPointer[LinkRecord](data)

	if !ok {
		data.Unmap()
		file.Close()
		return &MapError{Name: b.name, Path: b.path, Err: ErrSegmentTooSmall}
	}

	b.file, b.data, b.rec = file, data, rec
	return
}

func (b *Binding) mapRecord(file *os.File, prot int) (data mmap.MMap, err error) {
	info, err := file.Stat()

	if err != nil {
		return
	}

	// Touching pages past the end of the object would SIGBUS.
	if info.Size() < RecordSize {
		return nil, ErrSegmentTooSmall
	}

	return mapRegion(file, RecordSize, prot, 0, 0)
}

func (b *Binding) IsBound() bool {
	return b.rec != nil
}

func (b *Binding) Name() string {
	return b.name
}

// Path is the file backing the segment, e.g. /dev/shm/MumbleLink.1000.
func (b *Binding) Path() string {
	return b.path
}

func (b *Binding) Mode() Mode {
	return b.mode
}

// Record returns the live view of the mapped segment. Writing through the
// view of a read-only binding faults.
func (b *Binding) Record() (*LinkRecord, error) {
	if !b.IsBound() {
		return nil, ErrNotBound
	}

	return b.rec, nil
}

// Close unmaps the segment. The segment itself is left for its owner.
func (b *Binding) Close() (err error) {
	if !b.IsBound() {
		return
	}

	err = errors.Join(b.data.Unmap(), b.file.Close())
	b.rec, b.data, b.file = nil, nil, nil
	return
}
