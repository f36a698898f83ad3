package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"gitlab.com/olena.kushnir/contacts-api/internal/metrics"
	"gitlab.com/olena.kushnir/contacts-api/internal/model"
)

// ErrContactNotFound signals that an exact-match search yielded no rows.
// The id-based lookups do not use it; they report absence as a nil contact
// with a nil error, so that a missing id and a foreign-owned id look the
// same to the caller.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository executes owner-scoped contact queries against the
// database handle it was constructed with. Every read and write method
// takes the owner identity as an explicit argument; there is no implicit
// current user.
type ContactRepository struct {
	db           *sqlx.DB
	insert       *sqlx.NamedStmt
	selectScoped *sqlx.Stmt
}

// NewContactRepository prepares the hot statements and returns a repository
// bound to db. The handle can be a real database for production use or a
// mock database within unit tests.
func NewContactRepository(db *sqlx.DB) (*ContactRepository, error) {
	// Prepared statements offer a significant speed increase if executed many times.
	insert, err := db.PrepareNamed(`
		INSERT INTO contacts (first_name, last_name, email, contact_number, birth_date, additional_information, user_id)
		VALUES (:first_name, :last_name, :email, :contact_number, :birth_date, :additional_information, :user_id)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	selectScoped, err := db.Preparex(`
		SELECT * FROM contacts WHERE id = ? AND user_id = ?
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare scoped select: %w", err)
	}
	return &ContactRepository{
		db:           db,
		insert:       insert,
		selectScoped: selectScoped,
	}, nil
}

// ListOwn returns the contacts owned by ownerID in insertion order, windowed
// by limit and offset. An empty result is a valid outcome, not an error.
func (r *ContactRepository) ListOwn(limit, offset int, ownerID int64) ([]model.Contact, error) {
	defer metrics.TrackDBOperation("select")(time.Now())
	contacts := []model.Contact{}
	err := r.db.Select(&contacts, `
		SELECT * FROM contacts WHERE user_id = ? ORDER BY id LIMIT ? OFFSET ?
	`, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select contacts: %w", err)
	}
	return contacts, nil
}

// ListAll returns contacts across all owners, windowed by limit and offset.
// It bypasses the ownership filter and must only be reachable for callers
// holding the admin role.
func (r *ContactRepository) ListAll(limit, offset int) ([]model.Contact, error) {
	defer metrics.TrackDBOperation("select")(time.Now())
	contacts := []model.Contact{}
	err := r.db.Select(&contacts, `
		SELECT * FROM contacts ORDER BY id LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select all contacts: %w", err)
	}
	return contacts, nil
}

// Create persists a new contact attributed to ownerID and returns the
// record including its newly assigned id.
func (r *ContactRepository) Create(fields model.ContactFields, ownerID int64) (*model.Contact, error) {
	defer metrics.TrackDBOperation("insert")(time.Now())
	contact := model.Contact{
		FirstName:             fields.FirstName,
		LastName:              fields.LastName,
		Email:                 fields.Email,
		ContactNumber:         fields.ContactNumber,
		BirthDate:             fields.BirthDate,
		AdditionalInformation: fields.AdditionalInformation,
		UserId:                ownerID,
	}
	result, err := r.insert.Exec(&contact)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read insert id: %w", err)
	}
	contact.Id = id
	return &contact, nil
}

// Get fetches a contact by id on behalf of ownerID. A nil contact with a
// nil error means the id does not exist or belongs to another owner; the
// two cases are indistinguishable on purpose so that callers cannot probe
// for foreign ids.
func (r *ContactRepository) Get(id int64, ownerID int64) (*model.Contact, error) {
	defer metrics.TrackDBOperation("select")(time.Now())
	var contact model.Contact
	err := r.selectScoped.Get(&contact, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select contact: %w", err)
	}
	return &contact, nil
}

// Update overwrites every field of the contact identified by id and
// ownerID. When the scoped fetch finds nothing the call is a no-op and
// returns a nil contact; it never inserts a new record. The fetch and the
// write run in one transaction.
func (r *ContactRepository) Update(id int64, fields model.ContactFields, ownerID int64) (*model.Contact, error) {
	defer metrics.TrackDBOperation("update")(time.Now())
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	var existing model.Contact
	err = tx.Get(&existing, `SELECT * FROM contacts WHERE id = ? AND user_id = ?`, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		tx.Rollback()
		return nil, nil
	}
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("select contact for update: %w", err)
	}
	_, err = tx.Exec(`
		UPDATE contacts
		SET first_name = ?, last_name = ?, email = ?, contact_number = ?, birth_date = ?, additional_information = ?
		WHERE id = ? AND user_id = ?
	`, fields.FirstName, fields.LastName, fields.Email, fields.ContactNumber,
		fields.BirthDate, fields.AdditionalInformation, id, ownerID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("update contact: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}
	return &model.Contact{
		Id:                    id,
		FirstName:             fields.FirstName,
		LastName:              fields.LastName,
		Email:                 fields.Email,
		ContactNumber:         fields.ContactNumber,
		BirthDate:             fields.BirthDate,
		AdditionalInformation: fields.AdditionalInformation,
		UserId:                ownerID,
	}, nil
}

// Delete physically removes the contact identified by id and ownerID and
// returns its pre-delete snapshot. A nil contact with a nil error means
// nothing was removed. The fetch and the delete run in one transaction.
func (r *ContactRepository) Delete(id int64, ownerID int64) (*model.Contact, error) {
	defer metrics.TrackDBOperation("delete")(time.Now())
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("begin delete: %w", err)
	}
	var contact model.Contact
	err = tx.Get(&contact, `SELECT * FROM contacts WHERE id = ? AND user_id = ?`, id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		tx.Rollback()
		return nil, nil
	}
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("select contact for delete: %w", err)
	}
	_, err = tx.Exec(`DELETE FROM contacts WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("delete contact: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit delete: %w", err)
	}
	return &contact, nil
}

// FindByFirstName returns ownerID's contacts whose first name matches value
// exactly. Zero matches comes back as ErrContactNotFound rather than an
// empty result; the list operations treat empty as success but the search
// endpoints report a missing contact.
func (r *ContactRepository) FindByFirstName(value string, ownerID int64) ([]model.Contact, error) {
	defer metrics.TrackDBOperation("select")(time.Now())
	contacts := []model.Contact{}
	err := r.db.Select(&contacts, `
		SELECT * FROM contacts WHERE first_name = ? AND user_id = ?
	`, value, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select contacts by first name: %w", err)
	}
	if len(contacts) == 0 {
		return nil, ErrContactNotFound
	}
	return contacts, nil
}

// FindByLastName returns ownerID's contacts whose last name matches value
// exactly. Zero matches comes back as ErrContactNotFound.
func (r *ContactRepository) FindByLastName(value string, ownerID int64) ([]model.Contact, error) {
	defer metrics.TrackDBOperation("select")(time.Now())
	contacts := []model.Contact{}
	err := r.db.Select(&contacts, `
		SELECT * FROM contacts WHERE last_name = ? AND user_id = ?
	`, value, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select contacts by last name: %w", err)
	}
	if len(contacts) == 0 {
		return nil, ErrContactNotFound
	}
	return contacts, nil
}

// FindByEmail returns ownerID's contact with the given email address. The
// address is effectively unique per owner, so the first match is the only
// one. Zero matches comes back as ErrContactNotFound.
func (r *ContactRepository) FindByEmail(value string, ownerID int64) (*model.Contact, error) {
	defer metrics.TrackDBOperation("select")(time.Now())
	var contact model.Contact
	err := r.db.Get(&contact, `
		SELECT * FROM contacts WHERE email = ? AND user_id = ? LIMIT 1
	`, value, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select contact by email: %w", err)
	}
	return &contact, nil
}
