package migration

import (
	"gymstack/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.OrganizationModel{},
		&models.UserModel{},
		&models.MemberModel{},
		&models.PlanModel{},
		&models.MembershipModel{},
		&models.SubscriptionModel{},
		&models.ProductModel{},
		&models.AttendanceModel{},
		&models.AnnouncementModel{},
	}
}
