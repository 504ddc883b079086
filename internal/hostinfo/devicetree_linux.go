//go:build linux

package hostinfo

import (
	"os"
	"strings"
)

// deviceTreeModelPaths are tried in order; both exist on most Pi distros.
var deviceTreeModelPaths = []string{
	"/sys/firmware/devicetree/base/model",
	"/proc/device-tree/model",
}

// DeviceTreeModel returns the model string the firmware publishes in the
// device tree, or "" when none is readable.
func DeviceTreeModel() string {
	return readDeviceTreeModel(deviceTreeModelPaths)
}

func readDeviceTreeModel(paths []string) string {
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		m := strings.Trim(strings.TrimSpace(string(b)), "\x00")
		if m != "" {
			return m
		}
	}
	return ""
}
