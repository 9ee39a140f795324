package file

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/automidi/constants"
)

// Basename reduces a user supplied name to a bare file stem. Directory parts
// and a trailing .mid/.midi are dropped; an empty name gets a random one.
func Basename(name string) string {
	name = strings.TrimSpace(name)
	name = filepath.Base(filepath.Clean("/" + name))
	name = strings.TrimSuffix(strings.TrimSuffix(name, ".midi"), constants.MidiExt)
	if name == "" || name == "/" || name == "." {
		return "output-" + uuid.New().String()
	}
	return name
}

func OutputPath(dir string, name string) string {
	return filepath.Join(dir, Basename(name)+constants.MidiExt)
}
