package apierror

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryHintFor_CategoryActions(t *testing.T) {
	tests := []struct {
		category Category
		want     Action
	}{
		{CategoryAuthorization, ActionRefreshToken},
		{CategoryPermission, ActionFixAndRetry},
		{CategoryParameter, ActionFixAndRetry},
		{CategoryThrottling, ActionRetryAfter},
		{CategoryTemplate, ActionFixAndRetry},
		{CategoryMedia, ActionFixAndRetry},
		{CategoryPhoneRegistration, ActionFixAndRetry},
		{CategoryIntegrity, ActionDoNotRetry},
		{CategoryBusinessEligibility, ActionDoNotRetry},
		{CategoryReengagementWindow, ActionDoNotRetry},
		{CategoryWabaConfig, ActionFixAndRetry},
		{CategoryFlow, ActionFixAndRetry},
		{CategorySynchronization, ActionRetry},
		{CategoryServer, ActionRetry},
		{CategoryUnknown, ActionDoNotRetry},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, RetryHintFor(tt.category, "").Action)
		})
	}
}

func TestRetryHintFor_ThrottlingDefaultWait(t *testing.T) {
	hint := RetryHintFor(CategoryThrottling, "")
	assert.Equal(t, ActionRetryAfter, hint.Action)
	assert.Equal(t, 60*time.Second, hint.RetryAfter)
}

func TestRetryHintFor_ThrottlingHeaderWait(t *testing.T) {
	hint := RetryHintFor(CategoryThrottling, "30")
	assert.Equal(t, 30*time.Second, hint.RetryAfter)
}

func TestRetryHintFor_FractionalHeader(t *testing.T) {
	hint := RetryHintFor(CategoryThrottling, "1.5")
	assert.Equal(t, 1500*time.Millisecond, hint.RetryAfter)
}

func TestRetryHintFor_UnparseableHeaderFallsBack(t *testing.T) {
	hint := RetryHintFor(CategoryThrottling, "not-a-number")
	assert.Equal(t, 60*time.Second, hint.RetryAfter)
}

func TestRetryHintFor_NegativeHeaderIgnored(t *testing.T) {
	hint := RetryHintFor(CategoryThrottling, "-5")
	assert.Equal(t, 60*time.Second, hint.RetryAfter)
}

func TestRetryHintFor_NonThrottlingKeepsHeaderWait(t *testing.T) {
	hint := RetryHintFor(CategoryAuthorization, "10")
	assert.Equal(t, ActionRefreshToken, hint.Action)
	assert.Equal(t, 10*time.Second, hint.RetryAfter)
}

func TestRetryHintFor_NonThrottlingNoHeaderNoWait(t *testing.T) {
	hint := RetryHintFor(CategoryServer, "")
	assert.Equal(t, ActionRetry, hint.Action)
	assert.Zero(t, hint.RetryAfter)
}

func TestRetryHintFor_UnlistedCategoryDoesNotRetry(t *testing.T) {
	hint := RetryHintFor(Category("made_up"), "")
	assert.Equal(t, ActionDoNotRetry, hint.Action)
}
