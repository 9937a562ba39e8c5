package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	valuePolicyOnce sync.Once
	valuePolicy     *bluemonday.Policy
)

// ValuePolicy returns the policy used by WithSanitizer callers that do not
// need a custom one: strict stripping plus the handful of inline elements
// that are reasonable inside documentation prose.
func ValuePolicy() *bluemonday.Policy {
	valuePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("em", "strong", "code", "sub", "sup")
		valuePolicy = policy
	})
	return valuePolicy
}
