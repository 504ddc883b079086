//go:build !linux

package hostinfo

// DeviceTreeModel returns "" on platforms without a device tree.
func DeviceTreeModel() string { return "" }
