package results

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markerPolicyOnce sync.Once
	markerPolicy     *bluemonday.Policy
)

// Sanitize filters html down to the marker markup the engine emits: span
// elements with data attributes and the dialog affordance attributes.
// Everything else is stripped.
func Sanitize(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	return MarkerPolicy().Sanitize(html)
}

// MarkerPolicy returns the shared bluemonday policy used by Sanitize.
func MarkerPolicy() *bluemonday.Policy {
	markerPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("span")
		policy.AllowDataAttributes()
		policy.AllowAttrs(
			"role", "tabindex", "aria-haspopup", "aria-controls", "aria-expanded",
		).OnElements("span")

		markerPolicy = policy
	})
	return markerPolicy
}
