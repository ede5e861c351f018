package cascade

import (
	"fmt"
	"strings"
)

// SheetNotFoundError reports a requested sheet missing from the workbook.
// It carries the available sheet names so callers can surface them.
type SheetNotFoundError struct {
	Sheet     string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found; available sheets: %s",
		e.Sheet, strings.Join(e.Available, ", "))
}
