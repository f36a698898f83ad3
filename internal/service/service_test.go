package service

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"gitlab.com/olena.kushnir/contacts-api/internal/auth"
	"gitlab.com/olena.kushnir/contacts-api/internal/config"
	"gitlab.com/olena.kushnir/contacts-api/internal/model"
)

const testSigningKey = "unit-test-secret"

// contactColumns is the column set of the contacts table in storage order.
var contactColumns = []string{
	"id", "first_name", "last_name", "email", "contact_number",
	"birth_date", "additional_information", "user_id",
}

// createMockObjects builds a mock database handle and a mock object for
// defining our expected SQL calls.
func createMockObjects(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	return db, mock
}

// expectPreparedStatements instructs the mock object to expect that the
// repository's statements are being prepared.
func expectPreparedStatements(mock sqlmock.Sqlmock) {
	mock.ExpectPrepare("INSERT INTO contacts")
	mock.ExpectPrepare("SELECT \\* FROM contacts WHERE id = \\? AND user_id = \\?")
}

// initializeContactsService sets up the service with the mock database and
// returns a handle to the gin engine against which requests can be
// executed. The clock is pinned so birthday windows are deterministic.
func initializeContactsService(t *testing.T, db *sql.DB) *gin.Engine {
	cfg := &config.Config{}
	cfg.JWT.SigningKey = testSigningKey
	server, err := NewServer(cfg, sqlx.NewDb(db, "mysql"))
	if err != nil {
		t.Fatalf("an error '%s' was not expected when initializing the service", err)
	}
	server.now = func() time.Time {
		return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	}
	gin.SetMode(gin.ReleaseMode)
	return server.SetupHttpRouter(nil)
}

// runTest executes the HTTP request with the specified arguments and
// returns the response.
func runTest(t *testing.T, db *sql.DB, method string, url string, body *strings.Reader, token string) *httptest.ResponseRecorder {
	router := initializeContactsService(t, db)
	recorder := httptest.NewRecorder()
	if body == nil {
		body = strings.NewReader("")
	}
	request, _ := http.NewRequest(method, url, body)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(recorder, request)
	return recorder
}

func tokenFor(t *testing.T, userID int64, role string) string {
	token, err := auth.GenerateToken(testSigningKey, time.Hour, model.User{
		Id:    userID,
		Email: "caller@example.com",
		Role:  role,
	})
	if err != nil {
		t.Fatalf("an error '%s' was not expected when signing a token", err)
	}
	return token
}

func ownerToken(t *testing.T) string {
	return tokenFor(t, 7, model.RoleUser)
}

// TestGetAllForOwner executes a GET request for the caller's contacts. It
// expects the owner-scoped query and the JSON for a list of contacts.
func TestGetAllForOwner(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	rows := mock.NewRows(contactColumns).
		AddRow(1, "Aaron", "Abel", "aaron@example.com", "+420 111", time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), nil, 7).
		AddRow(2, "Berta", "Bauer", "berta@example.com", "+420 222", time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC), nil, 7)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE user_id = \\? ORDER BY id").
		WithArgs(int64(7), maxInt, 0).
		WillReturnRows(rows)

	recorder := runTest(t, db, "GET", "/api/contacts", nil, ownerToken(t))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var contacts []model.Contact
	json.Unmarshal(recorder.Body.Bytes(), &contacts)
	assert.Len(t, contacts, 2)
	assert.Equal(t, "Aaron", contacts[0].FirstName)
	assert.Equal(t, int64(7), contacts[0].UserId)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGetAllEmptyIsOK verifies that an empty contact list is a success for
// the list endpoint, unlike the search endpoints.
func TestGetAllEmptyIsOK(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE user_id = \\? ORDER BY id").
		WithArgs(int64(7), maxInt, 0).
		WillReturnRows(mock.NewRows(contactColumns))

	recorder := runTest(t, db, "GET", "/api/contacts", nil, ownerToken(t))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var contacts []model.Contact
	json.Unmarshal(recorder.Body.Bytes(), &contacts)
	assert.Empty(t, contacts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestMissingToken expects UNAUTHORIZED for a request without a bearer
// token, before any database access.
func TestMissingToken(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)

	recorder := runTest(t, db, "GET", "/api/contacts", nil, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestListAllRequiresAdminRole expects FORBIDDEN for a regular caller on
// the unscoped listing, before any database access.
func TestListAllRequiresAdminRole(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)

	recorder := runTest(t, db, "GET", "/api/contacts/all", nil, ownerToken(t))
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestListAllAsAdmin executes the unscoped listing with an admin token and
// expects contacts of several owners.
func TestListAllAsAdmin(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	rows := mock.NewRows(contactColumns).
		AddRow(1, "Aaron", "Abel", "aaron@example.com", "+420 111", time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), nil, 7).
		AddRow(2, "Berta", "Bauer", "berta@example.com", "+420 222", time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC), nil, 8)
	mock.ExpectQuery("SELECT \\* FROM contacts ORDER BY id").
		WithArgs(maxInt, 0).
		WillReturnRows(rows)

	recorder := runTest(t, db, "GET", "/api/contacts/all", nil, tokenFor(t, 1, model.RoleAdmin))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var contacts []model.Contact
	json.Unmarshal(recorder.Body.Bytes(), &contacts)
	assert.Len(t, contacts, 2)
	assert.Equal(t, int64(8), contacts[1].UserId)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGet executes a GET request for a single contact with a valid ID.
func TestGet(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	rows := mock.NewRows(contactColumns).
		AddRow(29, "Erika", "Mustermann", "erika@example.com", "+49 0815 4711", time.Date(1969, time.March, 2, 0, 0, 0, 0, time.UTC), nil, 7)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE id = \\? AND user_id = \\?").
		WithArgs(int64(29), int64(7)).
		WillReturnRows(rows)

	recorder := runTest(t, db, "GET", "/api/contacts/29", nil, ownerToken(t))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var getBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &getBody)
	assert.Equal(t, 29.0, getBody["id"])
	assert.Equal(t, "Erika", getBody["first_name"])
	assert.Equal(t, "erika@example.com", getBody["email"])
	assert.Equal(t, "1969-03-02T00:00:00Z", getBody["birth_date"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGetUnknownID executes a GET request with an id that does not exist
// for the caller. Whether the id is missing entirely or owned by somebody
// else is indistinguishable: both are NOT FOUND.
func TestGetUnknownID(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE id = \\? AND user_id = \\?").
		WithArgs(int64(9999), int64(7)).
		WillReturnRows(mock.NewRows(contactColumns))

	recorder := runTest(t, db, "GET", "/api/contacts/9999", nil, ownerToken(t))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGetInvalidCharacterID expects NOT FOUND for a non-numeric id, without
// reaching out to the database in the first place.
func TestGetInvalidCharacterID(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)

	recorder := runTest(t, db, "GET", "/api/contacts/INVALID", nil, ownerToken(t))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestPost executes a POST request with a valid body. It expects the
// CREATED status code and a body echoing the contact with its new id.
func TestPost(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectExec("INSERT INTO contacts").
		WithArgs(
			"Erika", "Mustermann", "erika@example.com", "+49 0815 4711",
			time.Date(1969, time.March, 2, 0, 0, 0, 0, time.UTC), nil, int64(7),
		).
		WillReturnResult(sqlmock.NewResult(42, 1))

	recorder := runTest(t, db, "POST", "/api/contacts", strings.NewReader(`
		{
			"first_name": "Erika",
			"last_name": "Mustermann",
			"email": "erika@example.com",
			"contact_number": "+49 0815 4711",
			"birth_date": "1969-03-02T00:00:00Z"
		}
	`), ownerToken(t))
	assert.Equal(t, http.StatusCreated, recorder.Code)
	var postBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &postBody)
	assert.Equal(t, 42.0, postBody["id"])
	assert.Equal(t, "Erika", postBody["first_name"])
	assert.Equal(t, 7.0, postBody["user_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestPostInvalidBodies executes POST requests with invalid bodies. All are
// answered with BAD REQUEST before any SQL statement runs.
func TestPostInvalidBodies(t *testing.T) {
	invalidRequestBodies := []string{
		"",
		"not JSON",
		"{}",
		`{"first_name": "Erika"}`, // other required fields missing
		`{
			"first_name": "Erika",
			"last_name": "Mustermann",
			"email": "not-an-email",
			"contact_number": "+49 0815 4711",
			"birth_date": "1969-03-02T00:00:00Z"
		}`,
	}
	for _, body := range invalidRequestBodies {
		db, mock := createMockObjects(t)
		defer db.Close()

		expectPreparedStatements(mock) // we expect that the call fails before the SQL statements

		recorder := runTest(t, db, "POST", "/api/contacts", strings.NewReader(body), ownerToken(t))
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "request body: "+body)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

// TestPut executes a PUT request with a valid ID and body. It expects the
// OK status code and a body carrying exactly the submitted fields, not a
// merge with the previous values.
func TestPut(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE id = \\? AND user_id = \\?").
		WithArgs(int64(17), int64(7)).
		WillReturnRows(mock.NewRows(contactColumns).
			AddRow(17, "Old", "Name", "old@example.com", "+1 000", time.Date(1950, time.April, 13, 0, 0, 0, 0, time.UTC), nil, 7))
	mock.ExpectExec("UPDATE contacts").
		WithArgs(
			"Rudi", "Völler", "rudi@example.com", "+49 1234567890",
			time.Date(1960, time.April, 13, 0, 0, 0, 0, time.UTC), nil, int64(17), int64(7),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	recorder := runTest(t, db, "PUT", "/api/contacts/17", strings.NewReader(`
		{
			"first_name": "Rudi",
			"last_name": "Völler",
			"email": "rudi@example.com",
			"contact_number": "+49 1234567890",
			"birth_date": "1960-04-13T00:00:00Z"
		}
	`), ownerToken(t))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var putBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &putBody)
	assert.Equal(t, 17.0, putBody["id"])
	assert.Equal(t, "Rudi", putBody["first_name"])
	assert.Equal(t, "rudi@example.com", putBody["email"])
	assert.Equal(t, "1960-04-13T00:00:00Z", putBody["birth_date"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestPutUnknownID expects NOT FOUND and no UPDATE statement when the
// scoped fetch finds nothing; the operation must not create a record.
func TestPutUnknownID(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE id = \\? AND user_id = \\?").
		WithArgs(int64(9999), int64(7)).
		WillReturnRows(mock.NewRows(contactColumns))
	mock.ExpectRollback()

	recorder := runTest(t, db, "PUT", "/api/contacts/9999", strings.NewReader(`
		{
			"first_name": "Rudi",
			"last_name": "Völler",
			"email": "rudi@example.com",
			"contact_number": "+49 1234567890",
			"birth_date": "1960-04-13T00:00:00Z"
		}
	`), ownerToken(t))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestDelete executes a DELETE request and expects the deleted contact's
// last state in the response.
func TestDelete(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE id = \\? AND user_id = \\?").
		WithArgs(int64(42), int64(7)).
		WillReturnRows(mock.NewRows(contactColumns).
			AddRow(42, "Erika", "Mustermann", "erika@example.com", "+49 0815 4711", time.Date(1969, time.March, 2, 0, 0, 0, 0, time.UTC), nil, 7))
	mock.ExpectExec("DELETE FROM contacts WHERE id = \\? AND user_id = \\?").
		WithArgs(int64(42), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	recorder := runTest(t, db, "DELETE", "/api/contacts/42", nil, ownerToken(t))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var deleteBody map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &deleteBody)
	assert.Equal(t, 42.0, deleteBody["id"])
	assert.Equal(t, "Erika", deleteBody["first_name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestDeleteUnknownID expects NOT FOUND and no DELETE statement when the
// scoped fetch finds nothing.
func TestDeleteUnknownID(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE id = \\? AND user_id = \\?").
		WithArgs(int64(9999), int64(7)).
		WillReturnRows(mock.NewRows(contactColumns))
	mock.ExpectRollback()

	recorder := runTest(t, db, "DELETE", "/api/contacts/9999", nil, ownerToken(t))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSearchFirstName executes an exact-match search and expects the JSON
// for a list of contacts.
func TestSearchFirstName(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	rows := mock.NewRows(contactColumns).
		AddRow(5, "Olha", "Shevchenko", "olha@example.com", "+380 111", time.Date(1991, time.May, 5, 0, 0, 0, 0, time.UTC), nil, 7)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE first_name = \\? AND user_id = \\?").
		WithArgs("Olha", int64(7)).
		WillReturnRows(rows)

	recorder := runTest(t, db, "GET", "/api/contacts/search/firstname/Olha", nil, ownerToken(t))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var contacts []model.Contact
	json.Unmarshal(recorder.Body.Bytes(), &contacts)
	assert.Len(t, contacts, 1)
	assert.Equal(t, "Olha", contacts[0].FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSearchFirstNameZeroMatches expects NOT FOUND for a search without
// matches. This is the deliberate contrast to TestGetAllEmptyIsOK: the list
// endpoint reports an empty page as success, the search reports it as a
// missing contact.
func TestSearchFirstNameZeroMatches(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE first_name = \\? AND user_id = \\?").
		WithArgs("Nobody", int64(7)).
		WillReturnRows(mock.NewRows(contactColumns))

	recorder := runTest(t, db, "GET", "/api/contacts/search/firstname/Nobody", nil, ownerToken(t))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	var body map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &body)
	assert.Equal(t, "Contact not found", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSearchEmail executes an exact-match email search and expects a single
// contact.
func TestSearchEmail(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	rows := mock.NewRows(contactColumns).
		AddRow(5, "Olha", "Shevchenko", "olha@example.com", "+380 111", time.Date(1991, time.May, 5, 0, 0, 0, 0, time.UTC), nil, 7)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE email = \\? AND user_id = \\?").
		WithArgs("olha@example.com", int64(7)).
		WillReturnRows(rows)

	recorder := runTest(t, db, "GET", "/api/contacts/search/email/olha@example.com", nil, ownerToken(t))
	assert.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &body)
	assert.Equal(t, "olha@example.com", body["email"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestUpcomingBirthdays pins the clock to 2024-03-15 and asks for a window
// ending 2024-03-31. Of the birthdays 03-10, 03-20 and 04-01 only the
// 03-20 contact qualifies.
func TestUpcomingBirthdays(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	rows := mock.NewRows(contactColumns).
		AddRow(1, "March", "Tenth", "m10@example.com", "+1", time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC), nil, 7).
		AddRow(2, "March", "Twentieth", "m20@example.com", "+2", time.Date(1985, time.March, 20, 0, 0, 0, 0, time.UTC), nil, 7).
		AddRow(3, "April", "First", "a01@example.com", "+3", time.Date(2001, time.April, 1, 0, 0, 0, 0, time.UTC), nil, 7)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE user_id = \\? ORDER BY id").
		WithArgs(int64(7), maxInt, 0).
		WillReturnRows(rows)

	recorder := runTest(t, db, "GET", "/api/contacts/birthdays?days=16", nil, ownerToken(t))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var contacts []model.Contact
	json.Unmarshal(recorder.Body.Bytes(), &contacts)
	assert.Len(t, contacts, 1)
	assert.Equal(t, int64(2), contacts[0].Id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestUpcomingBirthdaysPageBeforeFilter requests a page of five contacts
// none of which qualifies; the qualifying contact sits beyond the page and
// the response is empty. The filter runs after pagination.
func TestUpcomingBirthdaysPageBeforeFilter(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	rows := mock.NewRows(contactColumns)
	for i := 1; i <= 5; i++ {
		rows.AddRow(i, "Jan", "Uary", "jan@example.com", "+1", time.Date(1990, time.January, i, 0, 0, 0, 0, time.UTC), nil, 7)
	}
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE user_id = \\? ORDER BY id").
		WithArgs(int64(7), 5, 0).
		WillReturnRows(rows)

	recorder := runTest(t, db, "GET", "/api/contacts/birthdays?days=16&limit=5", nil, ownerToken(t))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var contacts []model.Contact
	json.Unmarshal(recorder.Body.Bytes(), &contacts)
	assert.Empty(t, contacts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestInvalidLimitParameter expects BAD REQUEST for a malformed limit,
// before any database access.
func TestInvalidLimitParameter(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)

	recorder := runTest(t, db, "GET", "/api/contacts?limit=zero", nil, ownerToken(t))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestStorageFault expects INTERNAL SERVER ERROR when the database fails,
// distinct from the NOT FOUND answers.
func TestStorageFault(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectQuery("SELECT \\* FROM contacts WHERE user_id = \\? ORDER BY id").
		WithArgs(int64(7), maxInt, 0).
		WillReturnError(sql.ErrConnDone)

	recorder := runTest(t, db, "GET", "/api/contacts", nil, ownerToken(t))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestHealthchecker probes the database with a trivial query.
func TestHealthchecker(t *testing.T) {
	db, mock := createMockObjects(t)
	defer db.Close()

	expectPreparedStatements(mock)
	mock.ExpectQuery("SELECT 1").
		WillReturnRows(mock.NewRows([]string{"1"}).AddRow(1))

	recorder := runTest(t, db, "GET", "/api/healthchecker", nil, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
