package linkmem

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

type config struct {
	dir string
	uid int
}

func defaultConfig() *config {
	return &config{
		dir: defaultDir,
		uid: currentUID(),
	}
}

// Option configures where a segment is looked up.
type Option func(*config) error

// WithDir sets the directory holding shared memory objects. Defaults to
// /dev/shm on Linux. Other systems do not expose shm objects as files, so
// the producer must use a file in the given directory.
func WithDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return fmt.Errorf("%w: empty directory", ErrInvalidConfig)
		}

		c.dir = dir
		return nil
	}
}

// WithUID overrides the user identifier appended to segment names.
func WithUID(uid int) Option {
	return func(c *config) error {
		if uid < 0 {
			return fmt.Errorf("%w: negative uid %d", ErrInvalidConfig, uid)
		}

		c.uid = uid
		return nil
	}
}

func newConfig(name string, opts []Option) (*config, error) {
	if name == "" || strings.ContainsRune(name, '/') {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	c := defaultConfig()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// segmentKey follows the producers' "{name}.{uid}" convention.
func (c *config) segmentKey(name string) string {
	return name + "." + strconv.Itoa(c.uid)
}

// segmentPath is where shm_open("/{name}.{uid}") lives on disk.
func (c *config) segmentPath(name string) string {
	return filepath.Join(c.dir, c.segmentKey(name))
}
