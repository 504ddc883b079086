// Package hostinfo reads the host's system information text (conventionally
// /proc/cpuinfo on a Raspberry Pi) and extracts the fields needed to identify
// the board.
//
// The source is line oriented, "Key<separator>Value", where the separator is
// any mix of spaces, tabs, colons and pipes. Only the Revision label is
// required; Serial, Hardware and Model are picked up when present.
package hostinfo
