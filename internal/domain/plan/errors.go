package plan

import "errors"

var (
	ErrPlanNotFound  = errors.New("plan not found")
	ErrDuplicateSlug = errors.New("plan slug already exists in organization")
	ErrPlanArchived  = errors.New("plan is archived")
)
