// Package launch turns a classified connection descriptor into an
// invocation of the external 1C starter executable. The starter is an
// external collaborator: this package composes its three positional
// arguments (mode token, form flag, connection argument) and hands off;
// it never supervises the spawned process.
package launch

import (
	"fmt"

	"baserun/internal/descriptor"
)

// Launch mode tokens understood by the starter.
const (
	ModeEnterprise = "ENTERPRISE"
	ModeDesigner   = "DESIGNER"
)

// Form flags understood by the starter.
const (
	FlagServer = "/S"
	FlagFile   = "/F"
	FlagWeb    = "/WS"
)

// serverArgSep joins host and infobase name in the /S argument. The
// backslash is part of the starter's contract on every platform, not a
// path separator of the local OS.
const serverArgSep = `\`

// Starter launches the external 1C starter with the three positional
// tokens. Implementations report ErrStarterNotFound when the executable
// cannot be located; any other error means process creation failed.
type Starter interface {
	Launch(mode, flag, arg string) error
}

// Dispatch maps a descriptor and the designer toggle to the starter's
// command-line shape and fires it. The descriptor variant decides the
// flag and argument; designer only ever changes the mode token.
func Dispatch(d descriptor.Descriptor, designer bool, starter Starter) error {
	mode := ModeEnterprise
	if designer {
		mode = ModeDesigner
	}

	switch d := d.(type) {
	case descriptor.Server:
		return starter.Launch(mode, FlagServer, d.Host+serverArgSep+d.RefName)
	case descriptor.File:
		return starter.Launch(mode, FlagFile, d.Path)
	case descriptor.Web:
		return starter.Launch(mode, FlagWeb, d.URL)
	default:
		return fmt.Errorf("unsupported descriptor variant %T", d)
	}
}
