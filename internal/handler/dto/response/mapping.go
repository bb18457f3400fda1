package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// copyInto maps a read model onto a response type with matching field names.
func copyInto[T any](src any) *T {
	dst := new(T)
	if err := copier.Copy(dst, src); err != nil {
		// only possible for mismatched kinds, which is a programming error
		slog.Error("response mapping failed", "error", err)
	}
	return dst
}

func copyList[S any, T any](items []S, one func(S) *T) []*T {
	out := make([]*T, len(items))
	for i, it := range items {
		out[i] = one(it)
	}
	return out
}

// Page wraps a list with the cursor for the next page, if any.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}
