package service

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gitlab.com/olena.kushnir/contacts-api/internal/auth"
	"gitlab.com/olena.kushnir/contacts-api/internal/config"
	"gitlab.com/olena.kushnir/contacts-api/internal/logging"
	"gitlab.com/olena.kushnir/contacts-api/internal/metrics"
	"gitlab.com/olena.kushnir/contacts-api/internal/middleware"
	"gitlab.com/olena.kushnir/contacts-api/internal/model"
	"gitlab.com/olena.kushnir/contacts-api/internal/repository"
)

// maxInt is the largest possible int value. Without a 'limit' URL parameter
// the result window is effectively unbounded.
const maxInt = int(^uint(0) >> 1)

// defaultBirthdayWindowDays is how far ahead the birthdays endpoint looks
// when the 'days' URL parameter is omitted.
const defaultBirthdayWindowDays = 7

// Server wires the HTTP layer to the contact repository.
type Server struct {
	cfg  *config.Config
	db   *sqlx.DB
	repo *repository.ContactRepository

	// now is swapped out in tests to pin the birthday window.
	now func() time.Time
}

// NewServer builds the repository on top of db and returns a server ready
// to register its routes.
func NewServer(cfg *config.Config, db *sqlx.DB) (*Server, error) {
	repo, err := repository.NewContactRepository(db)
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:  cfg,
		db:   db,
		repo: repo,
		now:  time.Now,
	}, nil
}

// SetupHttpRouter initializes the REST API router and registers all
// endpoints. The rate limiter is only attached when a redis client is
// provided.
func (s *Server) SetupHttpRouter(rdb *redis.Client) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(s.cfg.CORS.Origins))
	if rdb != nil {
		router.Use(middleware.RateLimit(rdb, s.cfg.Redis.RateLimit, s.cfg.Redis.RateWindow))
	}
	router.Use(logging.Middleware())
	router.Use(metrics.Middleware())

	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")
	api.GET("/healthchecker", s.healthchecker)

	contacts := api.Group("/contacts", auth.Middleware(s.cfg.JWT.SigningKey))
	contacts.GET("", s.findContacts)
	contacts.POST("", s.createContact)
	contacts.GET("/all", auth.RequireAdmin(), s.findAllContacts)
	contacts.GET("/birthdays", s.upcomingBirthdays)
	contacts.GET("/search/firstname/:value", s.findByFirstName)
	contacts.GET("/search/lastname/:value", s.findByLastName)
	contacts.GET("/search/email/:value", s.findByEmail)
	contacts.GET("/:id", s.findContactByID)
	contacts.PUT("/:id", s.updateContactByID)
	contacts.DELETE("/:id", s.deleteContactByID)

	return router
}

// ContactRequest is the JSON payload for creating or fully updating a
// contact. All fields except additional_information are required; the
// birth date is an RFC 3339 timestamp whose year is stored but ignored by
// the birthday window.
type ContactRequest struct {
	FirstName             string    `json:"first_name"     binding:"required"`
	LastName              string    `json:"last_name"      binding:"required"`
	Email                 string    `json:"email"          binding:"required,email"`
	ContactNumber         string    `json:"contact_number" binding:"required"`
	BirthDate             time.Time `json:"birth_date"     binding:"required"`
	AdditionalInformation *string   `json:"additional_information"`
}

func (r *ContactRequest) fields() model.ContactFields {
	return model.ContactFields{
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		Email:                 r.Email,
		ContactNumber:         r.ContactNumber,
		BirthDate:             r.BirthDate,
		AdditionalInformation: r.AdditionalInformation,
	}
}

// findContacts responds with the caller's contacts as JSON.
//
// The URL parameter 'limit' specifies how many contacts are returned. The
// URL parameter 'offset' specifies how many items from the list of results
// are skipped in the beginning. Together, the two implement result paging.
//
// Example REST API call:
//
//	> curl -H "Authorization: Bearer $TOKEN" "http://localhost:8080/api/contacts?limit=20&offset=60"
func (s *Server) findContacts(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	limit, offset, ok := parseLimitAndOffset(c)
	if !ok {
		return
	}
	contacts, err := s.repo.ListOwn(limit, offset, caller.UserID)
	if err != nil {
		s.storageFault(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contacts)
}

// findAllContacts responds with contacts across all owners. The route is
// gated by the admin role; regular callers never reach this handler.
func (s *Server) findAllContacts(c *gin.Context) {
	limit, offset, ok := parseLimitAndOffset(c)
	if !ok {
		return
	}
	contacts, err := s.repo.ListAll(limit, offset)
	if err != nil {
		s.storageFault(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contacts)
}

// createContact inserts the contact specified in the request's JSON into
// the database on behalf of the caller. It responds with the full contact
// data including the newly assigned id.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/contacts --request "POST" --header "Authorization: Bearer $TOKEN" --header "Content-Type: application/json" --data '{"first_name": "Hans", "last_name": "Wurst", "email": "hans@example.com", "contact_number": "0815", "birth_date": "1969-03-02T00:00:00Z"}'
func (s *Server) createContact(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var request ContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	contact, err := s.repo.Create(request.fields(), caller.UserID)
	if err != nil {
		s.storageFault(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, contact)
}

// findContactByID locates the caller's contact whose ID value matches the
// id parameter of the request URL, then returns that contact as a response.
// An id that does not exist and an id owned by somebody else are both
// answered with NOT FOUND.
//
// Example REST API call:
//
//	> curl -H "Authorization: Bearer $TOKEN" http://localhost:8080/api/contacts/56
func (s *Server) findContactByID(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	contact, err := s.repo.Get(id, caller.UserID)
	if err != nil {
		s.storageFault(c, err)
		return
	}
	if contact == nil {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// updateContactByID overwrites all fields of the caller's contact whose ID
// value matches the id parameter of the request URL and responds with the
// new version of the contact. A missing or foreign-owned id is a no-op
// answered with NOT FOUND; nothing is created in that case.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/contacts/56 --request "PUT" --header "Authorization: Bearer $TOKEN" --header "Content-Type: application/json" --data '{"first_name": "Erika", "last_name": "Mustermann", "email": "erika@example.com", "contact_number": "4711", "birth_date": "1972-06-06T00:00:00Z"}'
func (s *Server) updateContactByID(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var request ContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	contact, err := s.repo.Update(id, request.fields(), caller.UserID)
	if err != nil {
		s.storageFault(c, err)
		return
	}
	if contact == nil {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// deleteContactByID deletes the caller's contact whose ID value matches the
// id parameter of the request URL and responds with the deleted contact's
// last state.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/contacts/56 --request "DELETE" --header "Authorization: Bearer $TOKEN"
func (s *Server) deleteContactByID(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	contact, err := s.repo.Delete(id, caller.UserID)
	if err != nil {
		s.storageFault(c, err)
		return
	}
	if contact == nil {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// findByFirstName responds with the caller's contacts whose first name
// matches the URL path value exactly. Zero matches is answered with NOT
// FOUND, unlike the list endpoints where an empty result is a success.
func (s *Server) findByFirstName(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	contacts, err := s.repo.FindByFirstName(c.Param("value"), caller.UserID)
	s.respondSearch(c, contacts, err)
}

// findByLastName responds with the caller's contacts whose last name
// matches the URL path value exactly.
func (s *Server) findByLastName(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	contacts, err := s.repo.FindByLastName(c.Param("value"), caller.UserID)
	s.respondSearch(c, contacts, err)
}

// findByEmail responds with the caller's contact carrying the given email
// address.
func (s *Server) findByEmail(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	contact, err := s.repo.FindByEmail(c.Param("value"), caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"message": "Contact not found"})
			return
		}
		s.storageFault(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// respondSearch translates the search result of the name-based lookups into
// an HTTP response.
func (s *Server) respondSearch(c *gin.Context, contacts []model.Contact, err error) {
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"message": "Contact not found"})
			return
		}
		s.storageFault(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contacts)
}

// upcomingBirthdays responds with the caller's contacts whose birthday
// falls within the next 'days' days (7 when omitted), counted from today
// and compared by month and day only.
//
// The window is applied AFTER pagination: the offset/limit page of the
// caller's contacts is fetched first and then filtered, so the response can
// hold fewer than 'limit' contacts even when more qualifying ones exist
// beyond the page.
//
// The month/day comparison cannot cross the turn of the year; a December
// request looking into January comes back empty. Passing 'wrap=true'
// switches to the corrected comparison that handles the wrap.
//
// Example REST API call:
//
//	> curl -H "Authorization: Bearer $TOKEN" "http://localhost:8080/api/contacts/birthdays?days=7&limit=50"
func (s *Server) upcomingBirthdays(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	limit, offset, ok := parseLimitAndOffset(c)
	if !ok {
		return
	}
	days := defaultBirthdayWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid days parameter"})
			return
		}
		days = parsed
	}
	wrapAware := strings.EqualFold(c.Query("wrap"), "true")

	currentDate := s.now()
	toDate := currentDate.AddDate(0, 0, days)
	contacts, err := s.repo.UpcomingBirthdays(currentDate, toDate, offset, limit, caller.UserID, wrapAware)
	if err != nil {
		s.storageFault(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contacts)
}

// healthchecker verifies that the database answers a trivial query.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/healthchecker
func (s *Server) healthchecker(c *gin.Context) {
	var one int
	if err := s.db.Get(&one, "SELECT 1"); err != nil {
		logging.FromGin(c).Error("healthcheck query failed", zap.Error(err))
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"message": "Error connecting to the database"})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "Database is configured correctly"})
}

// requireCaller resolves the authenticated identity stored by the auth
// middleware. The middleware guarantees it is present on these routes; the
// guard is for handlers wired up without it by mistake.
func requireCaller(c *gin.Context) (auth.Identity, bool) {
	caller, ok := auth.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return auth.Identity{}, false
	}
	return caller, true
}

// parseID inspects the id parameter of the request URL. A non-numeric id is
// answered with NOT FOUND, matching the behavior for a numeric id that does
// not exist.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "invalid id parameter"})
		return 0, false
	}
	return id, true
}

// parseLimitAndOffset inspects the URL parameters and determines values for
// limit and offset of the result set.
func parseLimitAndOffset(c *gin.Context) (limit int, offset int, success bool) {
	limit = maxInt
	offset = 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid limit parameter"})
			return 0, 0, false
		}
		limit = parsed
	}
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid offset parameter"})
			return 0, 0, false
		}
		offset = parsed
	}
	return limit, offset, true
}

// storageFault reports a persistence failure to the caller. Absence is
// never routed here; it has its own NOT FOUND paths.
func (s *Server) storageFault(c *gin.Context, err error) {
	logging.FromGin(c).Error("storage fault", zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "storage error"})
}
