package entity

// Role คือ effective role ของ caller หนึ่งคนต่อหนึ่ง request
// แต่ละคนถือได้ทีละหนึ่ง role เท่านั้น (manager ชนะ delivery)
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDelivery Role = "delivery"
	RoleManager  Role = "manager"
)
