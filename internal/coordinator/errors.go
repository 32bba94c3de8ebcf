package coordinator

import (
	"fmt"

	"github.com/helixml/led-coordinator/internal/render"
)

func errUnknownLayout(layout render.Layout) error {
	return fmt.Errorf("unrecognized layout %q", string(layout))
}
