package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/cute/layout"
)

const bannerWidth = 70

// Composition renders the composition A ∘ B step by step: A's
// offsets, B's offsets, then the offsets of the composed result.
func Composition(w io.Writer, outer, inner layout.Layout) error {
	banner := strings.Repeat("=", bannerWidth)
	if _, err := fmt.Fprintf(w, "\n%s\nCOMPOSITION: A ∘ B\n%s\n", banner, banner); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\n[LAYOUT A]"); err != nil {
		return err
	}
	if err := Show(w, outer); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\n[LAYOUT B]"); err != nil {
		return err
	}
	if err := Show(w, inner); err != nil {
		return err
	}

	result, err := layout.Compose(outer, inner)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\n[RESULT] A ∘ B"); err != nil {
		return err
	}
	if err := Show(w, result); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, banner)
	return err
}
