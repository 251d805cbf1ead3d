package platform

import "fmt"

// Canonical endpoint map of the remote admin API.
//
// The ONE source of endpoint paths: the original console carried
// duplicate service modules with diverging names for the same route,
// so any blank -or- duplicate path here is a configuration error
// caught at startup, not at call time.
const (
	// auth
	epAdminLogin         = "/auth/admin/login"
	epAdminSendOtp       = "/auth/admin/sent-otp"
	epAdminVerifyOtp     = "/auth/exist/admin/verify-otp"
	epAdminResetPassword = "/auth/admin/reset-password"
	epAdminRegister      = "/auth/admin/register"

	// profile
	epProfileGet    = "/get/admin/profile"
	epProfileUpdate = "/admin/profile/detail/update"

	// child admins
	epChildAdminList        = "/admin/childadmin/list"
	epChildAdminPermissions = "/admin/childadmin/permissions" // +/:id

	// users
	epUserList      = "/admin/getall/users"
	epUserDetail    = "/admin/get/user/profile/detail"  // +/:id
	epUserBlock     = "/admin/user/block"               // +/:id
	epUserAnalytics = "/admin/get/user/analytical/data" // +/:id
	epUserTreeLevel = "/admin/user/tree/level"          // +/:id

	// user analytics tabs ; +/:id, ?startDate=&endDate=&type=
	epUserFeeds     = "/admin/user/analytics/feeds"
	epUserLiked     = "/admin/user/analytics/liked"
	epUserCommented = "/admin/user/analytics/commented"

	// creators
	epCreatorList = "/admin/getall/creators"

	// feeds & categories
	epFeedList       = "/admin/get/all/feed"
	epFeedUpload     = "/admin/feed-upload"
	epCategoryList   = "/admin/get/feed/category"
	epCategoryAdd    = "/admin/add/feed/category"
	epCategoryUpdate = "/admin/update/category"
	epCategoryDelete = "/admin/feed/category" // +/:id

	// subscription plans
	epPlanList   = "/admin/get/all/subscription"
	epPlanCreate = "/admin/create/subscription/plan"
	epPlanUpdate = "/admin/update/subscription/plan" // +/:id
	epPlanDelete = "/admin/delete/subscription/plan" // +/:id

	// reports
	epReportList   = "/admin/get/user/reports"
	epReportAction = "/admin/update/report/action" // +/:id

	// dashboard
	epDashboardMetrics       = "/admin/dashboard/metricks/counts"
	epDashboardRegistrations = "/admin/users/monthly-registrations"
	epDashboardSubscription  = "/admin/user/subscriptionration"
)

var endpoints = []string{
	epAdminLogin,
	epAdminSendOtp,
	epAdminVerifyOtp,
	epAdminResetPassword,
	epAdminRegister,
	epProfileGet,
	epProfileUpdate,
	epChildAdminList,
	epChildAdminPermissions,
	epUserList,
	epUserDetail,
	epUserBlock,
	epUserAnalytics,
	epUserTreeLevel,
	epUserFeeds,
	epUserLiked,
	epUserCommented,
	epCreatorList,
	epFeedList,
	epFeedUpload,
	epCategoryList,
	epCategoryAdd,
	epCategoryUpdate,
	epCategoryDelete,
	epPlanList,
	epPlanCreate,
	epPlanUpdate,
	epPlanDelete,
	epReportList,
	epReportAction,
	epDashboardMetrics,
	epDashboardRegistrations,
	epDashboardSubscription,
}

func validateEndpoints(paths []string) error {
	known := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if path == "" || path[0] != '/' {
			return fmt.Errorf("platform: invalid endpoint path %q", path)
		}
		if _, dup := known[path]; dup {
			return fmt.Errorf("platform: duplicate endpoint path %q", path)
		}
		known[path] = struct{}{}
	}
	return nil
}

func init() {
	if err := validateEndpoints(endpoints); err != nil {
		panic(err)
	}
}
