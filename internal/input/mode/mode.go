package mode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when parsing a name that is not a mode.
var ErrUnknownMode = errors.New("unknown mode")

// Mode identifies an input mode.
// The zero value is TorrentList.
type Mode uint8

const (
	// TorrentList is the default mode showing the torrent list.
	TorrentList Mode = iota
	// AddTorrent is active while adding a torrent.
	AddTorrent
)

// Default is the mode the application starts in.
const Default = TorrentList

var names = [...]string{
	TorrentList: "TorrentList",
	AddTorrent:  "AddTorrent",
}

// All returns every mode in declaration order.
func All() []Mode {
	return []Mode{TorrentList, AddTorrent}
}

// String returns the mode's configuration name.
func (m Mode) String() string {
	if int(m) < len(names) {
		return names[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Parse returns the mode with the given name. Names are matched exactly.
func Parse(name string) (Mode, error) {
	for i, n := range names {
		if n == name {
			return Mode(i), nil
		}
	}
	return Default, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownMode, name, strings.Join(names[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
