// Package seed loads bootstrap data from a YAML file: the platform god user
// and, for development, demo organizations with their gym plans.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gymstack/internal/application/uow"
	"gymstack/internal/domain/organization"
	"gymstack/internal/domain/permission"
	"gymstack/internal/domain/plan"
	"gymstack/internal/domain/user"
	"gymstack/internal/shared/logger"
	"gymstack/internal/shared/utils"
)

type File struct {
	GodUser       UserSeed           `yaml:"god_user"`
	Organizations []OrganizationSeed `yaml:"organizations"`
}

type UserSeed struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

type OrganizationSeed struct {
	Name     string     `yaml:"name"`
	Slug     string     `yaml:"slug"`
	PlanSlug string     `yaml:"plan_slug"`
	Owner    UserSeed   `yaml:"owner"`
	Plans    []PlanSeed `yaml:"plans"`
}

type PlanSeed struct {
	Name         string `yaml:"name"`
	Slug         string `yaml:"slug"`
	Description  string `yaml:"description"`
	Price        uint64 `yaml:"price"`
	Currency     string `yaml:"currency"`
	DurationDays int    `yaml:"duration_days"`
}

type Seeder struct {
	users         user.Repository
	organizations organization.Repository
	plans         plan.Repository
	unitOfWork    *uow.UnitOfWork
	bcryptCost    int
	logger        logger.Interface
}

func NewSeeder(
	users user.Repository,
	organizations organization.Repository,
	plans plan.Repository,
	unitOfWork *uow.UnitOfWork,
	bcryptCost int,
	log logger.Interface,
) *Seeder {
	return &Seeder{
		users:         users,
		organizations: organizations,
		plans:         plans,
		unitOfWork:    unitOfWork,
		bcryptCost:    bcryptCost,
		logger:        log.Named("seed"),
	}
}

// Run applies the seed file. Existing records are left untouched so the
// seeder is safe to run on every startup.
func (s *Seeder) Run(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debugw("no seed file found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := s.seedGodUser(ctx, file.GodUser); err != nil {
		return err
	}
	for _, orgSeed := range file.Organizations {
		if err := s.seedOrganization(ctx, orgSeed); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedGodUser(ctx context.Context, seed UserSeed) error {
	if seed.Email == "" {
		return nil
	}

	_, err := s.users.GetByEmail(ctx, seed.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to look up god user: %w", err)
	}

	hash, err := utils.HashPassword(seed.Password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash god user password: %w", err)
	}
	godUser, err := user.NewUser(seed.Email, seed.Name, hash, permission.RoleGod, nil)
	if err != nil {
		return fmt.Errorf("invalid god user seed: %w", err)
	}
	if err := s.users.Create(ctx, godUser); err != nil {
		return fmt.Errorf("failed to create god user: %w", err)
	}

	s.logger.Infow("god user seeded", "email", seed.Email)
	return nil
}

func (s *Seeder) seedOrganization(ctx context.Context, seed OrganizationSeed) error {
	_, err := s.organizations.GetBySlug(ctx, seed.Slug)
	if err == nil {
		return nil
	}
	if !errors.Is(err, organization.ErrOrganizationNotFound) {
		return fmt.Errorf("failed to look up organization %q: %w", seed.Slug, err)
	}

	hash, err := utils.HashPassword(seed.Owner.Password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash owner password: %w", err)
	}

	result, err := s.unitOfWork.CreateOrganizationWithOwner(ctx, uow.CreateOrganizationWithOwnerCommand{
		Name:              seed.Name,
		Slug:              seed.Slug,
		PlanSlug:          seed.PlanSlug,
		OwnerEmail:        seed.Owner.Email,
		OwnerName:         seed.Owner.Name,
		OwnerPasswordHash: hash,
	})
	if err != nil {
		return fmt.Errorf("failed to seed organization %q: %w", seed.Slug, err)
	}

	for _, planSeed := range seed.Plans {
		p, err := plan.NewPlan(
			result.Organization.ID(),
			planSeed.Name,
			planSeed.Slug,
			planSeed.Description,
			planSeed.Price,
			planSeed.Currency,
			planSeed.DurationDays,
		)
		if err != nil {
			return fmt.Errorf("invalid plan seed %q: %w", planSeed.Slug, err)
		}
		if err := s.plans.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed plan %q: %w", planSeed.Slug, err)
		}
	}

	s.logger.Infow("organization seeded", "slug", seed.Slug, "plans", len(seed.Plans))
	return nil
}
