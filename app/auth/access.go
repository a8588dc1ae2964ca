package auth

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"travelshare/app/apperrors"
)

type Plan string

const (
	PlanBasic    Plan = "basic"
	PlanAdvanced Plan = "advanced"
	PlanPro      Plan = "pro"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// AddonAll satisfies any addon requirement.
const AddonAll = "all"

// planAccess lists, per required plan, the plans allowed through.
var planAccess = map[Plan][]Plan{
	PlanBasic:    {PlanBasic, PlanAdvanced, PlanPro},
	PlanAdvanced: {PlanAdvanced, PlanPro},
	PlanPro:      {PlanPro},
}

// roleAccess lists, per required role, the roles allowed through.
var roleAccess = map[Role][]Role{
	RoleUser:  {RoleUser, RoleAdmin},
	RoleAdmin: {RoleAdmin},
}

// AllowedPlans returns the plans that satisfy required.
func AllowedPlans(required Plan) []Plan {
	return planAccess[required]
}

// AllowedRoles returns the roles that satisfy required.
func AllowedRoles(required Role) []Role {
	return roleAccess[required]
}

// CheckPlan returns a Forbidden error unless user's plan satisfies required.
// Unknown plan strings never satisfy anything.
func CheckPlan(user *User, required Plan) error {
	if user == nil || user.Plan == "" {
		return apperrors.Forbidden("No plan provided")
	}
	allowed := AllowedPlans(required)
	if !lo.Contains(allowed, Plan(user.Plan)) {
		return apperrors.Forbidden(fmt.Sprintf("Insufficient plan: required one of %s, but got %s",
			join(allowed), user.Plan))
	}
	return nil
}

// CheckRole returns a Forbidden error unless one of user's roles satisfies required.
func CheckRole(user *User, required Role) error {
	if user == nil || len(user.Roles) == 0 {
		return apperrors.Forbidden("No roles provided")
	}
	allowed := AllowedRoles(required)
	ok := lo.SomeBy(user.Roles, func(r string) bool {
		return lo.Contains(allowed, Role(r))
	})
	if !ok {
		return apperrors.Forbidden(fmt.Sprintf("Insufficient role: required one of %s, but got %s",
			join(allowed), strings.Join(user.Roles, ",")))
	}
	return nil
}

// CheckAddon returns a Forbidden error unless user holds addon or AddonAll.
func CheckAddon(user *User, addon string) error {
	if user == nil || len(user.Addons) == 0 {
		return apperrors.Forbidden("No addons provided")
	}
	if lo.Contains(user.Addons, AddonAll) || lo.Contains(user.Addons, addon) {
		return nil
	}
	return apperrors.Forbidden("Missing required addon: " + addon)
}

func join[T ~string](values []T) string {
	return strings.Join(lo.Map(values, func(v T, _ int) string { return string(v) }), ",")
}
