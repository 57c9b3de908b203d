package apierror

import (
	"strconv"
	"time"
)

// Action is the recommended client reaction to a failure. It is advice only;
// callers keep full control over whether and how to retry.
type Action string

const (
	ActionRetry        Action = "retry"
	ActionRetryAfter   Action = "retry_after"
	ActionFixAndRetry  Action = "fix_and_retry"
	ActionDoNotRetry   Action = "do_not_retry"
	ActionRefreshToken Action = "refresh_token"
)

// RetryHint pairs an action with an optional wait. RetryAfter is zero when no
// wait applies.
type RetryHint struct {
	Action     Action
	RetryAfter time.Duration
}

// defaultThrottleWait applies when the provider throttles without sending a
// Retry-After header.
const defaultThrottleWait = 60 * time.Second

// categoryActions is the fixed category→action table. Unclassifiable errors
// are never retried.
var categoryActions = map[Category]Action{
	CategoryAuthorization:       ActionRefreshToken,
	CategoryPermission:          ActionFixAndRetry,
	CategoryParameter:           ActionFixAndRetry,
	CategoryThrottling:          ActionRetryAfter,
	CategoryTemplate:            ActionFixAndRetry,
	CategoryMedia:               ActionFixAndRetry,
	CategoryPhoneRegistration:   ActionFixAndRetry,
	CategoryIntegrity:           ActionDoNotRetry,
	CategoryBusinessEligibility: ActionDoNotRetry,
	CategoryReengagementWindow:  ActionDoNotRetry,
	CategoryWabaConfig:          ActionFixAndRetry,
	CategoryFlow:                ActionFixAndRetry,
	CategorySynchronization:     ActionRetry,
	CategoryServer:              ActionRetry,
	CategoryUnknown:             ActionDoNotRetry,
}

// RetryHintFor derives the retry hint for a category. retryAfterHeader is the
// raw Retry-After response header value in seconds (fractions accepted);
// unparseable values are ignored. Throttling without a usable header falls
// back to the category default wait.
func RetryHintFor(category Category, retryAfterHeader string) RetryHint {
	action, ok := categoryActions[category]
	if !ok {
		action = ActionDoNotRetry
	}

	hint := RetryHint{Action: action}

	if retryAfterHeader != "" {
		if seconds, err := strconv.ParseFloat(retryAfterHeader, 64); err == nil && seconds >= 0 {
			hint.RetryAfter = time.Duration(seconds * float64(time.Second))
		}
	}

	if action == ActionRetryAfter && hint.RetryAfter == 0 {
		hint.RetryAfter = defaultThrottleWait
	}

	return hint
}
