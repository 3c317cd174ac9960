package importer

import (
	"errors"
	"fmt"
)

// ErrDataDirMissing reports a nonexistent data folder. Checked at the
// orchestrator boundary before any entity import is attempted.
var ErrDataDirMissing = errors.New("data folder does not exist")

// Error is a file- or store-level import failure, tagged with the site and
// entity type that was mid-flight. Field-level problems never surface here;
// they are absorbed as NULLs by the coercion layer.
type Error struct {
	Site   string
	Entity string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("importing %s for site %q: %v", e.Entity, e.Site, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
