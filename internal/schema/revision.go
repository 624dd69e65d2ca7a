package schema

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-segy/internal/errs"
)

// Revision is a normalized SEG-Y revision, the key of every
// revision-dependent table.
type Revision int

const (
	Rev0 Revision = 0
	Rev1 Revision = 1
)

func (r Revision) String() string {
	switch r {
	case Rev0:
		return "rev0"
	case Rev1:
		return "rev1"
	default:
		return "rev?"
	}
}

// ResolveRevision maps the raw SegyFormatRevisionNumber field onto a
// normalized revision. Many writers leave the field zero for rev 1 data and
// some store 256 (0x0100, the standard's major.minor packing), so 0, 1, 100
// and 256 all resolve to Rev1. Any other value is ErrUnknownRevision.
func ResolveRevision(raw int64) (Revision, error) {
	switch raw {
	case 0, 1, 100, 256:
		return Rev1, nil
	}
	return 0, errors.Wrapf(errs.ErrUnknownRevision, "raw revision %d", raw)
}
