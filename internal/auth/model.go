package auth

// User is the domain entity. Customers request quotes; admins
// manage the catalog, business rules, and quote approvals.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string // ADMIN | CUSTOMER
}
