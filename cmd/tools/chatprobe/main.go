// chatprobe sends one chat turn to a running backend and prints the parsed
// response, for poking at prompt and fallback behavior without a frontend.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

func main() {
	var (
		baseURL    = flag.String("url", "http://127.0.0.1:8080", "backend base URL")
		avatarType = flag.String("avatar", "computer-teacher", "avatar type")
		sessionID  = flag.String("session", "probe", "session id")
		prompt     = flag.String("prompt", "What is a linked list?", "question to ask")
	)
	flag.Parse()

	payload, err := json.Marshal(map[string]string{
		"prompt":     *prompt,
		"avatarType": *avatarType,
		"sessionId":  *sessionID,
	})
	if err != nil {
		log.Fatalf("failed to encode payload: %v", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Post(*baseURL+"/api/chat", "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("failed to read response: %v", err)
	}

	fmt.Printf("status: %s\n", resp.Status)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(pretty.String())
}
