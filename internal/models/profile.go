package models

// Profile is a row of the profiles table.
type Profile struct {
	UserID      string `db:"user_id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`       // '' when unset
	Nationality string `db:"nationality"` // ISO 3166 alpha-2, '' when unset
	VisaType    string `db:"visa_type"`
	AuditFields
}
