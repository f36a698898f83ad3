package main

import (
	"fmt"
	"net/http"
	"time"
)

// Polls the service's healthchecker endpoint until it answers OK. Useful in
// scripts that have to wait for the database and the service to come up.
func main() {
	totalWaitTime := 0
	for {
		res, err := http.Get("http://localhost:8080/api/healthchecker")
		if err == nil {
			if res.StatusCode == http.StatusOK {
				fmt.Println(res)
				break
			}
			fmt.Println(res)
		} else {
			fmt.Println(err)
		}
		totalWaitTime += 5
		fmt.Printf("Waiting %d seconds", totalWaitTime)
		fmt.Println()
		time.Sleep(5 * time.Second)
	}
}
