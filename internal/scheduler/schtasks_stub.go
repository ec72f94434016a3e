//go:build !windows

package scheduler

// osBackend is the no-op bridge for platforms without a supported task
// scheduler.
type osBackend struct{}

// NewOSBackend returns the host scheduler bridge. On this platform it only
// reports ErrUnsupported; the executable path is accepted for interface
// parity with the Windows build.
func NewOSBackend(string) Backend {
	return &osBackend{}
}

func (*osBackend) Supported() bool { return false }

func (*osBackend) Apply(utcTime string) error {
	if _, _, err := parseTime(utcTime); err != nil {
		return err
	}
	return ErrUnsupported
}
