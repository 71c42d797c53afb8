//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type solveRequest struct {
	Instance    json.RawMessage `json:"instance"`
	Size        int             `json:"size"`
	Iterations  int             `json:"iterations"`
	TournamentK int             `json:"tournamentK"`
	Mutations   int             `json:"mutations"`
}

type solveResult struct {
	Score       int    `json:"score"`
	Libraries   int    `json:"libraries"`
	Generations int    `json:"generations"`
	TimeMs      int64  `json:"timeMs"`
	Submission  string `json:"submission"`
}

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req solveRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}
	if len(req.Instance) == 0 {
		return errResp(400, "missing instance field")
	}

	inst, err := ParseInstanceJSON("request", req.Instance)
	if err != nil {
		return errResp(400, err.Error())
	}

	cfg := DefaultConfig()
	if req.Size > 0 {
		cfg.Size = req.Size
	}
	if req.Iterations > 0 {
		cfg.Iterations = req.Iterations
	}
	if req.TournamentK > 0 {
		cfg.TournamentK = req.TournamentK
	}
	if req.Mutations > 0 {
		cfg.Mutations = req.Mutations
	}
	if err := cfg.Validate(); err != nil {
		return errResp(400, err.Error())
	}

	logger := newLogger(false)
	defer func() { _ = logger.Sync() }()

	// The invocation context carries the lambda deadline: a timed-out request
	// still returns the best ordering found so far.
	res, err := NewEvolver(inst, cfg, logger).Run(ctx)
	if err != nil {
		return errResp(500, err.Error())
	}
	sub := BuildSubmission(res.Best)

	respJSON, _ := json.Marshal(solveResult{
		Score:       sub.Score,
		Libraries:   len(sub.Entries),
		Generations: res.Generations,
		TimeMs:      res.Elapsed.Milliseconds(),
		Submission:  sub.Format(),
	})
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
