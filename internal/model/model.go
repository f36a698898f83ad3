package model

import "time"

// Contact is the data structure for a person record. Every contact belongs
// to exactly one user; queries on behalf of that user never see anybody
// else's contacts.
type Contact struct {
	Id                    int64     `json:"id"                               db:"id"`
	FirstName             string    `json:"first_name"                       db:"first_name"`
	LastName              string    `json:"last_name"                        db:"last_name"`
	Email                 string    `json:"email"                            db:"email"`
	ContactNumber         string    `json:"contact_number"                   db:"contact_number"`
	BirthDate             time.Time `json:"birth_date"                       db:"birth_date"`
	AdditionalInformation *string   `json:"additional_information,omitempty" db:"additional_information"`
	UserId                int64     `json:"user_id"                          db:"user_id"`
}

// ContactFields carries the mutable attributes of a contact. Create stores
// them as a new record; Update overwrites every field of an existing one,
// there is no partial patch.
type ContactFields struct {
	FirstName             string
	LastName              string
	Email                 string
	ContactNumber         string
	BirthDate             time.Time
	AdditionalInformation *string
}

// User is an authenticated principal that owns contacts. Credentials and
// account lifecycle live in the auth subsystem; only identity and role
// matter here.
type User struct {
	Id    int64  `json:"id"    db:"id"`
	Email string `json:"email" db:"email"`
	Role  string `json:"role"  db:"role"`
}

// Roles a user can hold. Admins may list contacts across all owners.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
