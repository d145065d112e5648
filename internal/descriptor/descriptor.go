// Package descriptor classifies 1C:Enterprise connection descriptor
// strings. A descriptor is the single piece of text a user supplies to
// identify a target infobase; several historically-accumulated syntaxes
// are in circulation (ws=, File=, Srvr=/Ref=, plain host;ref) and this
// package decides deterministically which one a given string matches
// and extracts its fields.
package descriptor

// Form identifies which descriptor syntax matched (or failed to match).
type Form string

const (
	FormWeb    Form = "web"
	FormFile   Form = "file"
	FormServer Form = "server"
	FormSimple Form = "simple"
)

// Descriptor is the classified connection target. Exactly one concrete
// variant exists per value; consumers dispatch with a type switch. The
// unexported method seals the set so a new variant forces every switch
// to grow a case.
type Descriptor interface {
	form() Form
}

// Server is a named infobase on a server cluster.
type Server struct {
	Host    string
	RefName string
}

// File is a file-based infobase.
type File struct {
	Path string
}

// Web is a web-service published infobase.
type Web struct {
	URL string
}

func (Server) form() Form { return FormServer }
func (File) form() Form   { return FormFile }
func (Web) form() Form    { return FormWeb }

// FormOf reports the form of a classified descriptor, for logging and
// diagnostics.
func FormOf(d Descriptor) Form { return d.form() }
