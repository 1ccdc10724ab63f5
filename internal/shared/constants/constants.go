package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyOrgID     = "organization_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Membership statuses
	MembershipStatusPending   = "pending"
	MembershipStatusActive    = "active"
	MembershipStatusExpired   = "expired"
	MembershipStatusCancelled = "cancelled"

	// Organization statuses
	OrganizationStatusActive   = "active"
	OrganizationStatusInactive = "inactive"

	// Organization plan slugs
	PlanSlugFreeTrial = "free-trial"
	PlanSlugBasic     = "basic"
	PlanSlugPro       = "pro"
	PlanSlugUnlimited = "unlimited"

	// Plan feature flags
	FeatureInvoicing = "invoicing"
	FeatureAPIAccess = "api_access"

	// Database table names
	TableOrganizations = "organizations"
	TableUsers         = "users"
	TableMembers       = "members"
	TableMemberships   = "memberships"
	TablePlans         = "plans"
	TableSubscriptions = "subscriptions"
	TableProducts      = "products"
	TableAttendances   = "attendances"
	TableAnnouncements = "announcements"

	// Default values
	DefaultCurrency  = "USD"
	DefaultTrialDays = 14
)
