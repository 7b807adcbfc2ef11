package repository

import (
	"lemonapi/entity"

	"gorm.io/gorm"
)

const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery crew"
)

type GroupRepository struct{ DB *gorm.DB }

func NewGroupRepository(db *gorm.DB) *GroupRepository { return &GroupRepository{DB: db} }

func (r *GroupRepository) GetByName(name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// GroupNamesOf returns the names of every group the user belongs to.
func (r *GroupRepository) GroupNamesOf(userID uint) ([]string, error) {
	var names []string
	err := r.DB.Table("groups").
		Select("groups.name").
		Joins("JOIN user_groups ug ON ug.group_id = groups.id").
		Where("ug.user_id = ?", userID).
		Scan(&names).Error
	return names, err
}

func (r *GroupRepository) AddUser(group *entity.Group, user *entity.User) error {
	return r.DB.Model(user).Association("Groups").Append(group)
}

func (r *GroupRepository) RemoveUser(group *entity.Group, user *entity.User) error {
	return r.DB.Model(user).Association("Groups").Delete(group)
}

func (r *GroupRepository) ListUsers(group *entity.Group) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Model(group).Association("Users").Find(&users)
	return users, err
}
