package blob

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// objectKey builds a unique object name from the uploaded filename. The uuid
// prefix avoids collisions between identically named uploads; the original
// name is kept so downloads stay recognizable.
func objectKey(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	return uuid.New().String() + "-" + name
}
