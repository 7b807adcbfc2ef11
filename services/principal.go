package services

import "errors"

// Role is resolved once per request from group membership and passed
// explicitly to every service call. First match wins: Manager, then
// Delivery crew, else Customer. There is no combined role.
type Role string

const (
	RoleManager      Role = "manager"
	RoleDeliveryCrew Role = "delivery_crew"
	RoleCustomer     Role = "customer"
)

type Principal struct {
	UserID  uint
	IsStaff bool
	Role    Role
}

var (
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
)
