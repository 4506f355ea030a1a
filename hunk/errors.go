package hunk

import "errors"

// Error sentinels. Wrap with fmt.Errorf("%w: ...") for context; callers
// should use errors.Is against these.
var (
	ErrBadMagic          = errors.New("hunk: bad magic")
	ErrUnsupportedKind   = errors.New("hunk: unsupported file kind")
	ErrTruncated         = errors.New("hunk: truncated")
	ErrSizeTableMismatch = errors.New("hunk: size table mismatch")
	ErrUnknownHunkKind   = errors.New("hunk: unknown hunk kind")
	ErrOrphanMetadata    = errors.New("hunk: orphan metadata block")
)
