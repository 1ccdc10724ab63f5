package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymstack/internal/domain/permission"
	"gymstack/internal/interfaces/http/middleware"
)

// Router owns the gin engine and route registration.
type Router struct {
	engine    *gin.Engine
	container *Container
}

func NewRouter(container *Container) *Router {
	engine := gin.New()

	r := &Router{
		engine:    engine,
		container: container,
	}
	r.setupMiddleware()
	r.setupRoutes()
	return r
}

func (r *Router) setupMiddleware() {
	c := r.container

	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(c.log))
	r.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	if c.rateLimiter != nil {
		r.engine.Use(middleware.RateLimit(c.rateLimiter, &c.cfg.RateLimit, c.log))
	}
}

func (r *Router) setupRoutes() {
	c := r.container

	r.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", c.authHandler.Login)
		authRoutes.POST("/refresh", c.authHandler.RefreshToken)
	}

	authed := api.Group("")
	authed.Use(c.authMiddleware.RequireAuth())

	org := authed.Group("/organization")
	{
		org.GET("", c.organizationHandler.GetOrganization)
		org.PUT("", c.organizationHandler.UpdateSettings)
	}

	members := authed.Group("/members")
	{
		members.POST("", c.memberHandler.CreateMember)
		members.GET("", c.memberHandler.ListMembers)
		members.GET("/:id", c.memberHandler.GetMember)
		members.PUT("/:id", c.memberHandler.UpdateMember)
		members.DELETE("/:id",
			middleware.RequirePermission(c.permissions, permission.MembersDelete),
			c.memberHandler.DeleteMember)
	}

	memberships := authed.Group("/memberships")
	{
		memberships.POST("", c.membershipHandler.CreateMembership)
		memberships.GET("", c.membershipHandler.ListMemberships)
		memberships.POST("/:id/cancel", c.membershipHandler.CancelMembership)
		memberships.POST("/:id/restore", c.membershipHandler.RestoreMembership)
		memberships.DELETE("/:id",
			middleware.RequirePermission(c.permissions, permission.MembershipsDelete),
			c.membershipHandler.DeleteMembership)
	}

	plans := authed.Group("/plans")
	{
		plans.POST("", c.planHandler.CreatePlan)
		plans.GET("", c.planHandler.ListPlans)
		plans.PUT("/:id", c.planHandler.UpdatePlan)
		plans.DELETE("/:id",
			middleware.RequirePermission(c.permissions, permission.PlansDelete),
			c.planHandler.DeletePlan)
	}

	products := authed.Group("/products")
	{
		products.POST("", c.productHandler.CreateProduct)
		products.GET("", c.productHandler.ListProducts)
		products.PUT("/:id", c.productHandler.UpdateProduct)
		products.DELETE("/:id",
			middleware.RequirePermission(c.permissions, permission.ProductsDelete),
			c.productHandler.DeleteProduct)
	}

	staff := authed.Group("/staff")
	{
		staff.POST("", c.staffHandler.CreateStaff)
		staff.GET("", c.staffHandler.ListStaff)
		staff.PUT("/:id/role", c.staffHandler.UpdateStaffRole)
	}

	attendance := authed.Group("/attendance")
	{
		attendance.POST("/check-in", c.attendanceHandler.CheckIn)
		attendance.GET("", c.attendanceHandler.ListAttendance)
	}

	announcements := authed.Group("/announcements")
	{
		announcements.POST("", c.announcementHandler.CreateAnnouncement)
		announcements.GET("", c.announcementHandler.ListAnnouncements)
		announcements.DELETE("/:id",
			middleware.RequirePermission(c.permissions, permission.AnnouncementsDelete),
			c.announcementHandler.DeleteAnnouncement)
	}

	// Platform operator surface. Organizations are provisioned, rebilled and
	// torn down here, never from inside a tenant.
	admin := authed.Group("/admin")
	admin.Use(middleware.RequireGod())
	{
		admin.POST("/organizations", c.organizationHandler.CreateOrganization)
		admin.GET("/organizations", c.organizationHandler.ListOrganizations)
		admin.POST("/organizations/:id/upgrade", c.organizationHandler.UpgradePlan)
		admin.DELETE("/organizations/:id", c.organizationHandler.DeleteOrganization)
	}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
