package revision

import (
	"strings"

	"github.com/shinji-kodama/rpi-model/internal/hostinfo"
	"github.com/shinji-kodama/rpi-model/internal/model"
)

// newStylePrefix marks the 8-character encoding; only the last four
// characters are shown to the user.
const newStylePrefix = "1000"

// Resolution is the outcome of resolving one revision code.
type Resolution struct {
	// Record is the board description, owned by the caller.
	Record model.ModelRecord

	// Display is the code as it should be shown to the user.
	Display string

	// Key is the normalized code used for the table lookup.
	Key string

	// Host is the parsed system info when the code came from the host.
	// Nil for ResolveFromCode.
	Host *hostinfo.Info
}

// NormalizeKey strips all leading and trailing '0' characters from a raw
// revision code. Applying it twice yields the same key as applying it once.
func NormalizeKey(raw string) string {
	return strings.Trim(raw, "0")
}

// DisplayForm returns the code as shown to the user. Codes starting with
// "1000" are reduced to their last four characters; everything else is
// returned unchanged.
func DisplayForm(raw string) string {
	if strings.HasPrefix(raw, newStylePrefix) {
		return raw[len(raw)-4:]
	}
	return raw
}

// ResolveFromCode looks up a raw revision code without touching the host.
//
// The lookup key is derived from the raw code, not from the display form.
// Returns *model.UnknownRevisionError carrying the normalized key when the
// table has no entry for it.
func ResolveFromCode(code string) (Resolution, error) {
	key := NormalizeKey(code)
	rec, ok := Lookup(key)
	if !ok {
		return Resolution{}, &model.UnknownRevisionError{Key: key}
	}
	return Resolution{
		Record:  rec,
		Display: DisplayForm(code),
		Key:     key,
	}, nil
}

// ResolveFromHostInfo reads the system info source at path, resolves the
// Revision found there, and attaches the host's serial number.
//
// Read and parse failures wrap model.ErrSourceUnavailable.
func ResolveFromHostInfo(path string) (Resolution, error) {
	info, err := hostinfo.Load(path)
	if err != nil {
		return Resolution{}, err
	}

	res, err := ResolveFromCode(info.Revision)
	if err != nil {
		return Resolution{}, err
	}
	res.Record = res.Record.WithSerial(info.Serial)
	res.Host = &info
	return res, nil
}
