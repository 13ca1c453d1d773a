//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type layoutRequest struct {
	Horizontal  []string `json:"horizontal"`
	Vertical    []string `json:"vertical"`
	MaxAttempts int      `json:"maxAttempts"`
	Seed        int64    `json:"seed"`
}

type layoutResponse struct {
	Height int          `json:"height"`
	Width  int          `json:"width"`
	Area   int          `json:"area"`
	Rows   []string     `json:"rows"`
	Words  []PlacedWord `json:"words"`
	TimeMs int64        `json:"timeMs"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req layoutRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}

	lists, err := normalizeWordLists(WordLists{Horizontal: req.Horizontal, Vertical: req.Vertical})
	if err != nil {
		return errResp(400, err.Error())
	}

	cfg := DefaultConfig()
	if req.MaxAttempts > 0 {
		cfg.MaxAttempts = req.MaxAttempts
	}
	cfg.Seed = req.Seed

	start := time.Now()
	sol := NewGenerator(lists, cfg).Generate()
	if sol == nil {
		return errResp(422, "no layout found within the attempt budget")
	}

	h, w := sol.Grid.UsedDimensions()
	resp := layoutResponse{
		Height: h,
		Width:  w,
		Area:   h * w,
		Rows:   GridRows(sol.Grid),
		Words:  sol.Words,
		TimeMs: time.Since(start).Milliseconds(),
	}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
