//go:build windows

package launch

// Default install location of the 1C starter on Windows.
const defaultStarterPath = `c:\Program Files\1cv8\common\1cestart.exe`
