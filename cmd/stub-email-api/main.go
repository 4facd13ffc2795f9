// Command stub-email-api is a stand-in for the transactional-email API,
// for local development only. It accepts POST /email, logs the payload,
// and answers 200. Set EMAIL_CLIENT_BASE_URL=http://localhost:9090 to
// point the server at it.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
)

func main() {
	addr := os.Getenv("STUB_EMAIL_ADDR")
	if addr == "" {
		addr = ":9090"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /email", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Some-Server-Token") == "" {
			http.Error(w, `{"error":"missing X-Some-Server-Token"}`, http.StatusUnauthorized)
			return
		}
		var payload struct {
			From, To, Subject, HtmlBody, TextBody string
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
			return
		}
		log.Printf("stub email: to=%s subject=%q", payload.To, payload.Subject)
		log.Printf("stub email text body:\n%s", payload.TextBody)
		w.WriteHeader(http.StatusOK)
	})

	log.Printf("WARNING: stub email API for local testing only, listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
