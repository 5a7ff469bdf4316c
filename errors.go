package hxpage

import "errors"

// Sentinel errors. Building and rendering a Document never fails; these only
// come from the edges where foreign components or input are converted.
var (
	ErrComponentRender = errors.New("hxpage: component render failed")
	ErrInvalidManifest = errors.New("hxpage: invalid manifest")
	ErrUnknownFormat   = errors.New("hxpage: unknown manifest format")
)

// IsComponentRender checks if err came from rendering a templ component into a
// Fragment.
func IsComponentRender(err error) bool {
	return errors.Is(err, ErrComponentRender)
}

// IsManifestError checks if err is a manifest validation or format error.
func IsManifestError(err error) bool {
	return errors.Is(err, ErrInvalidManifest) || errors.Is(err, ErrUnknownFormat)
}
