package hostinfo

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/shinji-kodama/rpi-model/internal/model"
)

// DefaultPath is where Linux exposes the Raspberry Pi revision and serial.
const DefaultPath = "/proc/cpuinfo"

// Info holds the fields extracted from the system information source.
type Info struct {
	// Revision is the raw revision code, unnormalized.
	Revision string

	// Serial is the board serial number. Empty when the source has none.
	Serial string

	// Hardware is the SoC name (e.g. "BCM2708"), when reported.
	Hardware string

	// Model is the free-text model line newer firmware adds, when reported.
	Model string
}

// labelPattern builds a regex that matches a label at the start of a line,
// followed by a tolerant separator, capturing the word that follows.
func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(label) + `[ \t:|]*(\w+)`)
}

var (
	revisionRe = labelPattern("Revision")
	serialRe   = labelPattern("Serial")
	hardwareRe = labelPattern("Hardware")
)

// modelRe captures the whole remainder of the Model line, since model
// strings contain spaces ("Raspberry Pi Model B Rev 2").
var modelRe = regexp.MustCompile(`(?m)^Model[ \t]*[:|][ \t]*(.+?)[ \t]*$`)

// Parse extracts host information from the given text.
//
// Returns an error wrapping model.ErrSourceUnavailable when no Revision
// field can be found.
func Parse(text string) (Info, error) {
	rev := firstMatch(revisionRe, text)
	if rev == "" {
		return Info{}, fmt.Errorf("no Revision field found: %w", model.ErrSourceUnavailable)
	}

	return Info{
		Revision: rev,
		Serial:   firstMatch(serialRe, text),
		Hardware: firstMatch(hardwareRe, text),
		Model:    firstMatch(modelRe, text),
	}, nil
}

// Load reads the file at path and parses it.
//
// The file is read in a single call and closed before returning. Any read
// failure is wrapped with model.ErrSourceUnavailable; no retry is attempted.
func Load(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to read %s: %w: %w", path, model.ErrSourceUnavailable, err)
	}

	info, err := Parse(string(data))
	if err != nil {
		return Info{}, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}

func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
