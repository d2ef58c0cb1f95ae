package entity

// Subscriber is a newsletter recipient. Unsubscribe flips IsActive off
// instead of deleting the row; a repeat subscribe reactivates it.
type Subscriber struct {
	Base
	Email     string  `db:"email"`
	FirstName *string `db:"first_name"`
	LastName  *string `db:"last_name"`
	IsActive  bool    `db:"is_active"`
}
