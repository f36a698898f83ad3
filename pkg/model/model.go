package model

import "time"

// Contact is the wire representation of a contact as returned by the API.
// Consumers unmarshal API responses into this type.
type Contact struct {
	Id                    int64     `json:"id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Email                 string    `json:"email"`
	ContactNumber         string    `json:"contact_number"`
	BirthDate             time.Time `json:"birth_date"`
	AdditionalInformation *string   `json:"additional_information,omitempty"`
	UserId                int64     `json:"user_id"`
}
