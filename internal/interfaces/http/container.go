package http

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	announcementUC "gymstack/internal/application/announcement/usecases"
	attendanceUC "gymstack/internal/application/attendance/usecases"
	authUC "gymstack/internal/application/auth/usecases"
	"gymstack/internal/application/authz"
	"gymstack/internal/application/entitlement"
	memberUC "gymstack/internal/application/member/usecases"
	membershipUC "gymstack/internal/application/membership/usecases"
	organizationUC "gymstack/internal/application/organization/usecases"
	planUC "gymstack/internal/application/plan/usecases"
	productUC "gymstack/internal/application/product/usecases"
	staffUC "gymstack/internal/application/staff/usecases"
	"gymstack/internal/application/uow"
	"gymstack/internal/domain/announcement"
	"gymstack/internal/domain/attendance"
	"gymstack/internal/domain/member"
	"gymstack/internal/domain/membership"
	"gymstack/internal/domain/organization"
	"gymstack/internal/domain/plan"
	"gymstack/internal/domain/product"
	"gymstack/internal/domain/subscription"
	"gymstack/internal/domain/user"
	"gymstack/internal/infrastructure/auth"
	infraAuthz "gymstack/internal/infrastructure/authz"
	"gymstack/internal/infrastructure/config"
	"gymstack/internal/infrastructure/email"
	"gymstack/internal/infrastructure/ratelimit"
	"gymstack/internal/infrastructure/repository"
	"gymstack/internal/interfaces/http/handlers"
	"gymstack/internal/interfaces/http/middleware"
	sharedDB "gymstack/internal/shared/db"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/services/markdown"
)

// Container wires repositories, services, use cases and handlers together.
type Container struct {
	db    *gorm.DB
	cfg   *config.Config
	log   logger.Interface
	redis *redis.Client

	repos       *repositories
	unitOfWork  *uow.UnitOfWork
	permissions authz.PermissionService

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    ratelimit.RateLimiter

	authHandler         *handlers.AuthHandler
	organizationHandler *handlers.OrganizationHandler
	memberHandler       *handlers.MemberHandler
	membershipHandler   *handlers.MembershipHandler
	planHandler         *handlers.PlanHandler
	productHandler      *handlers.ProductHandler
	staffHandler        *handlers.StaffHandler
	attendanceHandler   *handlers.AttendanceHandler
	announcementHandler *handlers.AnnouncementHandler
}

type repositories struct {
	organizations organization.Repository
	users         user.Repository
	members       member.Repository
	memberships   membership.Repository
	subscriptions subscription.Repository
	plans         plan.Repository
	products      product.Repository
	attendances   attendance.Repository
	announcements announcement.Repository
}

// NewContainer builds the full dependency graph. redisClient may be nil when
// rate limiting is disabled.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		db:    db,
		cfg:   cfg,
		log:   log,
		redis: redisClient,
	}

	c.repos = &repositories{
		organizations: repository.NewOrganizationRepository(db, log),
		users:         repository.NewUserRepository(db, log),
		members:       repository.NewMemberRepository(db, log),
		memberships:   repository.NewMembershipRepository(db, log),
		subscriptions: repository.NewSubscriptionRepository(db, log),
		plans:         repository.NewPlanRepository(db),
		products:      repository.NewProductRepository(db),
		attendances:   repository.NewAttendanceRepository(db),
		announcements: repository.NewAnnouncementRepository(db),
	}

	enforcer, err := infraAuthz.NewEnforcer()
	if err != nil {
		return nil, err
	}
	c.permissions = authz.NewPermissionService(enforcer, log)

	txManager := sharedDB.NewTransactionManager(db)
	c.unitOfWork = uow.New(
		txManager,
		c.repos.organizations,
		c.repos.users,
		c.repos.members,
		c.repos.memberships,
		c.repos.subscriptions,
		log,
	)

	entitlements := entitlement.NewService(c.repos.organizations, c.repos.members, c.repos.users, log)
	markdownService := markdown.NewService()
	emailService := email.NewServiceFromConfig(&cfg.Email, log)
	jwtService := auth.NewJWTService(&cfg.Auth.JWT)
	bcryptCost := cfg.Auth.Password.BcryptCost

	c.authMiddleware = middleware.NewAuthMiddleware(jwtService, log)
	if cfg.RateLimit.Enabled && redisClient != nil {
		c.rateLimiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	c.authHandler = handlers.NewAuthHandler(
		authUC.NewLoginUseCase(c.repos.users, jwtService, log),
		authUC.NewRefreshTokenUseCase(c.repos.users, jwtService),
	)

	c.organizationHandler = handlers.NewOrganizationHandler(
		organizationUC.NewCreateOrganizationUseCase(c.unitOfWork, c.permissions, bcryptCost, log),
		organizationUC.NewGetOrganizationUseCase(c.repos.organizations, entitlements, c.permissions),
		organizationUC.NewListOrganizationsUseCase(c.repos.organizations, c.permissions),
		organizationUC.NewUpdateOrganizationSettingsUseCase(c.unitOfWork, c.permissions),
		organizationUC.NewUpgradeOrganizationPlanUseCase(c.unitOfWork, c.permissions, log),
		organizationUC.NewDeleteOrganizationUseCase(txManager, c.repos.organizations, c.repos.subscriptions, c.permissions, log),
	)

	c.memberHandler = handlers.NewMemberHandler(
		memberUC.NewCreateMemberUseCase(c.repos.members, c.permissions, entitlements, log),
		memberUC.NewGetMemberUseCase(c.repos.members, c.permissions),
		memberUC.NewListMembersUseCase(c.repos.members, c.permissions),
		memberUC.NewUpdateMemberUseCase(c.repos.members, c.permissions),
		memberUC.NewDeleteMemberUseCase(c.repos.members, c.repos.memberships, c.permissions, log),
	)

	c.membershipHandler = handlers.NewMembershipHandler(
		membershipUC.NewCreateMembershipUseCase(c.unitOfWork, c.repos.plans, c.repos.members, c.permissions, emailService, log),
		membershipUC.NewCancelMembershipUseCase(c.unitOfWork, c.permissions),
		membershipUC.NewDeleteMembershipUseCase(c.unitOfWork, c.permissions),
		membershipUC.NewRestoreMembershipUseCase(c.unitOfWork, c.permissions),
		membershipUC.NewListMembershipsUseCase(c.repos.memberships, c.permissions),
	)

	c.planHandler = handlers.NewPlanHandler(
		planUC.NewCreatePlanUseCase(c.repos.plans, c.permissions, log),
		planUC.NewUpdatePlanUseCase(c.repos.plans, c.permissions),
		planUC.NewListPlansUseCase(c.repos.plans, c.permissions),
		planUC.NewDeletePlanUseCase(c.repos.plans, c.permissions, log),
	)

	c.productHandler = handlers.NewProductHandler(
		productUC.NewCreateProductUseCase(c.repos.products, c.permissions, log),
		productUC.NewUpdateProductUseCase(c.repos.products, c.permissions),
		productUC.NewListProductsUseCase(c.repos.products, c.permissions),
		productUC.NewDeleteProductUseCase(c.repos.products, c.permissions, log),
	)

	c.staffHandler = handlers.NewStaffHandler(
		staffUC.NewCreateStaffUseCase(c.repos.users, c.repos.organizations, c.permissions, entitlements, emailService, bcryptCost, log),
		staffUC.NewListStaffUseCase(c.repos.users, c.permissions),
		staffUC.NewUpdateStaffRoleUseCase(c.repos.users, c.permissions, log),
	)

	c.attendanceHandler = handlers.NewAttendanceHandler(
		attendanceUC.NewCheckInMemberUseCase(c.repos.attendances, c.repos.members, c.permissions, log),
		attendanceUC.NewListAttendanceUseCase(c.repos.attendances, c.permissions),
	)

	c.announcementHandler = handlers.NewAnnouncementHandler(
		announcementUC.NewCreateAnnouncementUseCase(c.repos.announcements, markdownService, c.permissions, log),
		announcementUC.NewListAnnouncementsUseCase(c.repos.announcements, c.permissions),
		announcementUC.NewDeleteAnnouncementUseCase(c.repos.announcements, c.permissions),
	)

	return c, nil
}

// UnitOfWork exposes the transactional workflow service, used by seeding.
func (c *Container) UnitOfWork() *uow.UnitOfWork {
	return c.unitOfWork
}

// Repositories exposes the repository set, used by seeding.
func (c *Container) Repositories() (organization.Repository, user.Repository, plan.Repository) {
	return c.repos.organizations, c.repos.users, c.repos.plans
}
