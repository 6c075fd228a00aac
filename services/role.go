package services

import (
	"github.com/Wezzer42/littlelemon/entity"
	"github.com/Wezzer42/littlelemon/repository"
)

// RoleResolver ตัดสิน effective role ของ caller จาก superuser flag + group membership
// precedence: superuser/Manager group → manager (ชนะ Delivery crew เสมอ)
type RoleResolver struct {
	Users *repository.UserRepository
}

func NewRoleResolver(users *repository.UserRepository) *RoleResolver {
	return &RoleResolver{Users: users}
}

func (r *RoleResolver) Resolve(userID uint) (entity.Role, error) {
	user, err := r.Users.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user.IsSuperuser {
		return entity.RoleManager, nil
	}

	if in, err := r.Users.InGroup(userID, entity.GroupManager); err != nil {
		return "", err
	} else if in {
		return entity.RoleManager, nil
	}

	if in, err := r.Users.InGroup(userID, entity.GroupDeliveryCrew); err != nil {
		return "", err
	} else if in {
		return entity.RoleDelivery, nil
	}

	return entity.RoleCustomer, nil
}
