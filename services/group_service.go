package services

import (
	"errors"
	"fmt"

	"lemonapi/entity"
	"lemonapi/repository"

	"gorm.io/gorm"
)

// GroupService manages Manager / Delivery crew membership. Every call
// is staff-gated; role groups never grant access to this surface.
type GroupService struct {
	GroupRepo *repository.GroupRepository
	UserRepo  *repository.UserRepository
}

func NewGroupService(gr *repository.GroupRepository, ur *repository.UserRepository) *GroupService {
	return &GroupService{GroupRepo: gr, UserRepo: ur}
}

// ResolveRole maps group membership to exactly one role, first match
// wins: Manager, then Delivery crew, else Customer.
func (s *GroupService) ResolveRole(userID uint) (Role, error) {
	names, err := s.GroupRepo.GroupNamesOf(userID)
	if err != nil {
		return RoleCustomer, err
	}
	manager, crew := false, false
	for _, n := range names {
		switch n {
		case repository.GroupManager:
			manager = true
		case repository.GroupDeliveryCrew:
			crew = true
		}
	}
	if manager {
		return RoleManager, nil
	}
	if crew {
		return RoleDeliveryCrew, nil
	}
	return RoleCustomer, nil
}

func (s *GroupService) requireStaff(p Principal) error {
	if !p.IsStaff {
		return fmt.Errorf("%w: staff only", ErrForbidden)
	}
	return nil
}

func (s *GroupService) Members(p Principal, groupName string) ([]entity.User, error) {
	if err := s.requireStaff(p); err != nil {
		return nil, err
	}
	g, err := s.GroupRepo.GetByName(groupName)
	if err != nil {
		return nil, err
	}
	return s.GroupRepo.ListUsers(g)
}

// Assign adds the user to the group; repeated assigns are no-ops.
func (s *GroupService) Assign(p Principal, groupName string, userID uint) error {
	if err := s.requireStaff(p); err != nil {
		return err
	}
	g, err := s.GroupRepo.GetByName(groupName)
	if err != nil {
		return err
	}
	u, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user", ErrNotFound)
		}
		return err
	}
	return s.GroupRepo.AddUser(g, u)
}

func (s *GroupService) Remove(p Principal, groupName string, userID uint) error {
	if err := s.requireStaff(p); err != nil {
		return err
	}
	g, err := s.GroupRepo.GetByName(groupName)
	if err != nil {
		return err
	}
	u, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user", ErrNotFound)
		}
		return err
	}
	return s.GroupRepo.RemoveUser(g, u)
}
