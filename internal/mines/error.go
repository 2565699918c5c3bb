package mines

import "fmt"

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

// AllocationError reports that a cell grid could not be obtained.
type AllocationError struct {
	Width, Height int
	Err           error
}

// [AllocationError] implements [error]
func (e AllocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unable to allocate %dx%d field: %s", e.Width, e.Height, e.Err)
	}
	return fmt.Sprintf("unable to allocate %dx%d field", e.Width, e.Height)
}

func (e AllocationError) Unwrap() error {
	return e.Err
}
