package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	apimodel "gitlab.com/olena.kushnir/contacts-api/pkg/model"

	"gitlab.com/olena.kushnir/contacts-api/internal/auth"
	"gitlab.com/olena.kushnir/contacts-api/internal/model"
)

const serverPort = 8080

// Walks the API end to end against a locally running service: create a
// contact, read it back, search for it, list upcoming birthdays, update it
// and delete it again. The bearer token is signed locally with the same
// secret the service was started with.
//
// Usage example on the command line:
// > JWT_SECRET=changeme go run main.go
func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "contactsapisecretkey"
	}
	token, err := auth.GenerateToken(secret, time.Hour, model.User{
		Id:    1,
		Email: "smoke@example.com",
		Role:  model.RoleUser,
	})
	if err != nil {
		fmt.Println("could not sign token", err)
		panic(err)
	}

	birthday := time.Now().AddDate(-30, 0, 3).Format(time.RFC3339)
	jsonBody := []byte(fmt.Sprintf(`{
		"first_name": "Marcus",
		"last_name": "Antonius",
		"email": "marcus@example.com",
		"contact_number": "+39 999 777 555",
		"birth_date": %q
	}`, birthday))

	created := postContact(token, jsonBody)
	fmt.Printf("created contact %d\n", created.Id)

	walk(token, "GET", fmt.Sprintf("/api/contacts/%d", created.Id), nil)
	walk(token, "GET", "/api/contacts?limit=10", nil)
	walk(token, "GET", "/api/contacts/search/firstname/Marcus", nil)
	walk(token, "GET", "/api/contacts/search/lastname/Antonius", nil)
	walk(token, "GET", "/api/contacts/search/email/marcus@example.com", nil)
	walk(token, "GET", "/api/contacts/birthdays?days=7", nil)
	walk(token, "PUT", fmt.Sprintf("/api/contacts/%d", created.Id), jsonBody)
	walk(token, "DELETE", fmt.Sprintf("/api/contacts/%d", created.Id), nil)
	walk(token, "GET", fmt.Sprintf("/api/contacts/%d", created.Id), nil)
}

func postContact(token string, jsonBody []byte) apimodel.Contact {
	body, status := sendRequest(token, "POST", "/api/contacts", bytes.NewReader(jsonBody))
	if status != http.StatusCreated {
		fmt.Println("create failed with status", status)
		panic(status)
	}
	var contact apimodel.Contact
	if err := json.Unmarshal(body, &contact); err != nil {
		fmt.Println("could not unmarshal JSON", err)
		panic(err)
	}
	return contact
}

func walk(token, method, path string, jsonBody []byte) {
	var reader io.Reader
	if jsonBody != nil {
		reader = bytes.NewReader(jsonBody)
	}
	_, status := sendRequest(token, method, path, reader)
	fmt.Printf("%-6s %-50s -> %d\n", method, path, status)
}

func sendRequest(token, method, path string, bodyReader io.Reader) ([]byte, int) {
	requestURL := fmt.Sprintf("http://localhost:%d%s", serverPort, path)
	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		fmt.Println("could not create request", err)
		panic(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("error making http request", err)
		panic(err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println("could not read response body", err)
		panic(err)
	}
	return resBody, res.StatusCode
}
