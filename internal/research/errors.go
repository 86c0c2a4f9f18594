package research

import (
	"fmt"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

// AllPlatformsFailedError is returned when every attempted platform
// failed, the only whole-session failure path. It carries each
// platform's error so the caller can report them individually.
type AllPlatformsFailedError struct {
	Attempted []domain.Platform
	Errors    map[domain.Platform]string
}

func (e *AllPlatformsFailedError) Error() string {
	return fmt.Sprintf("all %d attempted platforms failed", len(e.Attempted))
}
