package domain

// Role роль вызывающего, передается шлюзом в заголовке X-User-Role
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole конвертирует строку в Role; неизвестные и пустые значения считаются customer
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleCustomer
}

// Caller аутентифицированный вызывающий
type Caller struct {
	UserID int64
	Role   Role
}

// IsAdmin true для администраторов пансиона
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanAccessCustomer может ли вызывающий читать данные клиента
func (c Caller) CanAccessCustomer(customerID int64) bool {
	return c.IsAdmin() || c.UserID == customerID
}
