// Package apierror classifies Graph API failures into categories with
// recommended retry behavior. Classification is a pure lookup; it never fails
// and never retries anything itself.
package apierror

// Category groups upstream error codes by root cause.
type Category string

const (
	CategoryAuthorization       Category = "authorization"
	CategoryPermission          Category = "permission"
	CategoryParameter           Category = "parameter"
	CategoryThrottling          Category = "throttling"
	CategoryTemplate            Category = "template"
	CategoryMedia               Category = "media"
	CategoryPhoneRegistration   Category = "phone_registration"
	CategoryIntegrity           Category = "integrity"
	CategoryBusinessEligibility Category = "business_eligibility"
	CategoryReengagementWindow  Category = "reengagement_window"
	CategoryWabaConfig          Category = "waba_config"
	CategoryFlow                Category = "flow"
	CategorySynchronization     Category = "synchronization"
	CategoryServer              Category = "server"
	CategoryUnknown             Category = "unknown"
)

// codeCategories maps known Graph API error codes to categories. Built once,
// never mutated.
var codeCategories = map[int]Category{
	// Authorization
	0:   CategoryAuthorization,
	190: CategoryAuthorization,
	// Permission
	10:  CategoryPermission,
	200: CategoryPermission,
	299: CategoryPermission,
	// Throttling / rate limits
	4:      CategoryThrottling,
	80007:  CategoryThrottling,
	130429: CategoryThrottling,
	131048: CategoryThrottling,
	131056: CategoryThrottling,
	// Parameter
	33:     CategoryParameter,
	100:    CategoryParameter,
	130472: CategoryParameter,
	131008: CategoryParameter,
	131009: CategoryParameter,
	131021: CategoryParameter,
	131026: CategoryParameter,
	135000: CategoryParameter,
	// Media
	131051: CategoryMedia,
	131052: CategoryMedia,
	131053: CategoryMedia,
	// Template
	132000: CategoryTemplate,
	132001: CategoryTemplate,
	132005: CategoryTemplate,
	132007: CategoryTemplate,
	132012: CategoryTemplate,
	132015: CategoryTemplate,
	132016: CategoryTemplate,
	// Flow
	132068: CategoryFlow,
	132069: CategoryFlow,
	// Phone registration
	133000: CategoryPhoneRegistration,
	133004: CategoryPhoneRegistration,
	133005: CategoryPhoneRegistration,
	133006: CategoryPhoneRegistration,
	133008: CategoryPhoneRegistration,
	133009: CategoryPhoneRegistration,
	133010: CategoryPhoneRegistration,
	133015: CategoryPhoneRegistration,
	133016: CategoryPhoneRegistration,
	// Re-engagement window
	131047: CategoryReengagementWindow,
	// Integrity
	368:    CategoryIntegrity,
	130497: CategoryIntegrity,
	131031: CategoryIntegrity,
}

// CodeAbsent stands in for responses whose body carried no error code. Code 0
// is a real authorization code upstream, so absence needs its own marker.
const CodeAbsent = -1

// Categorize resolves an error code and HTTP status to a category. Known
// codes win over the HTTP status; a 5xx status without a known code is a
// server error; everything else is unknown.
func Categorize(code, httpStatus int) Category {
	if code != CodeAbsent {
		if category, ok := codeCategories[code]; ok {
			return category
		}
	}
	if httpStatus >= 500 {
		return CategoryServer
	}
	return CategoryUnknown
}
