//go:build !windows

package launch

// Default install location of the 1C starter on Linux and macOS.
const defaultStarterPath = "/opt/1cv8/common/1cestart"
