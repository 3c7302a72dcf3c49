package detect

import (
	"context"
	"strings"

	"targetcheck/constants"
)

// SignatureDetector is the collaborator boundary for image-based signature
// detection. The vision call itself lives outside this module; callers wire an
// implementation and pass its answer into the validation request.
type SignatureDetector interface {
	Detect(ctx context.Context, image []byte) (bool, error)
}

// TextPresent is the fallback used when no vision collaborator answered: the
// "Customer Signature" line of the normalized document counts as signed when
// anything was extracted after the marker.
func TextPresent(doc string) bool {
	for _, line := range strings.Split(doc, "\n") {
		idx := strings.Index(line, constants.SignatureMarker)
		if idx < 0 {
			continue
		}
		rest := strings.Trim(line[idx+len(constants.SignatureMarker):], " :.-")
		if rest != "" {
			return true
		}
	}
	return false
}
