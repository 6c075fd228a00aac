package repository

import (
	"errors"

	"github.com/Wezzer42/littlelemon/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&cnt).Error
	return cnt, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.User{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---------------- Groups (ตัวกำหนด role) ----------------

func (r *UserRepository) InGroup(userID uint, groupName string) (bool, error) {
	var cnt int64
	err := r.DB.Table("user_groups").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("user_groups.user_id = ? AND groups.name = ?", userID, groupName).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *UserRepository) ListGroupMembers(groupName string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Joins("JOIN groups g ON g.id = ug.group_id").
		Where("g.name = ?", groupName).
		Find(&users).Error
	return users, err
}

func (r *UserRepository) AddToGroup(userID uint, groupName string) error {
	user, err := r.FindByID(userID)
	if err != nil {
		return err
	}
	var group entity.Group
	if err := r.DB.FirstOrCreate(&group, entity.Group{Name: groupName}).Error; err != nil {
		return err
	}
	return r.DB.Model(user).Association("Groups").Append(&group)
}

// RemoveFromGroup คืน false ถ้า user ไม่ได้อยู่ใน group นั้น
func (r *UserRepository) RemoveFromGroup(userID uint, groupName string) (bool, error) {
	in, err := r.InGroup(userID, groupName)
	if err != nil {
		return false, err
	}
	if !in {
		return false, nil
	}
	var group entity.Group
	if err := r.DB.Where("name = ?", groupName).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	user := entity.User{Model: gorm.Model{ID: userID}}
	if err := r.DB.Model(&user).Association("Groups").Delete(&group); err != nil {
		return false, err
	}
	return true, nil
}
