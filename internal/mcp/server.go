// Package mcp exposes the cipher toolkit over the Model Context Protocol so
// the agent-driven grader can encode, decode, check exercise sets, and crack
// ciphertexts without shelling out to the CLI.
package mcp

import (
	"context"
	"fmt"
	"path/filepath"

	"rotor/internal/analyze"
	"rotor/internal/codec"
	"rotor/internal/exercise"
	"rotor/internal/logging"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// DefaultCrackCandidates is how many ranked shifts the crack tool returns
// when the caller does not ask for a specific count.
var DefaultCrackCandidates = 3

// Server wraps the MCP SDK server. All tools are stateless; the only ambient
// state is the project root used to resolve relative exercise-set paths.
type Server struct {
	MCPServer   *sdkmcp.Server
	ProjectRoot string
}

// NewServer creates an MCP server with the cipher tools registered.
// projectRoot anchors relative exercise-set paths; "" means use them as-is.
func NewServer(projectRoot string) *Server {
	s := &Server{ProjectRoot: projectRoot}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "rotor", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "encode",
		Description: "Encode text with the alphabet shift cipher: drop non-letters, uppercase, shift each letter, group in 5-letter blocks.",
	}, s.handleEncode)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "decode",
		Description: "Decode shift-ciphered text with a known shift (applies the complement shift).",
	}, s.handleDecode)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "check_exercise",
		Description: "Run an exercise set YAML file and return per-case verdicts plus a pass/fail/skip summary.",
	}, s.handleCheckExercise)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "crack",
		Description: "Rank the most likely shifts for a ciphertext by letter-frequency analysis.",
	}, s.handleCrack)
}

// --- Tool input/output types ---

type encodeInput struct {
	Text  string `json:"text" jsonschema:"the plaintext to encode"`
	Shift int    `json:"shift" jsonschema:"alphabet positions to rotate forward (non-negative)"`
}

type encodeOutput struct {
	Result string `json:"result"`
}

type decodeInput struct {
	Text  string `json:"text" jsonschema:"the ciphertext to decode"`
	Shift int    `json:"shift" jsonschema:"the shift the text was encoded with"`
}

type decodeOutput struct {
	Result string `json:"result"`
}

type checkExerciseInput struct {
	Path     string `json:"path" jsonschema:"path to the exercise set YAML file"`
	Parallel int    `json:"parallel,omitempty" jsonschema:"number of parallel workers (default 1 = serial)"`
}

type caseVerdict struct {
	Name    string `json:"name"`
	Verdict string `json:"verdict"`
	Got     string `json:"got"`
	Want    string `json:"want,omitempty"`
}

type checkExerciseOutput struct {
	SetName string        `json:"set_name"`
	Passed  int           `json:"passed"`
	Failed  int           `json:"failed"`
	Skipped int           `json:"skipped"`
	Cases   []caseVerdict `json:"cases"`
}

type crackInput struct {
	Text string `json:"text" jsonschema:"the ciphertext to analyze"`
	TopN int    `json:"top_n,omitempty" jsonschema:"number of ranked candidates to return (default 3, max 26)"`
}

type crackCandidate struct {
	Shift   int     `json:"shift"`
	Score   float64 `json:"score"`
	Preview string  `json:"preview"`
}

type crackOutput struct {
	Candidates []crackCandidate `json:"candidates"`
}

// --- Handlers ---

func (s *Server) handleEncode(ctx context.Context, _ *sdkmcp.CallToolRequest, input encodeInput) (*sdkmcp.CallToolResult, encodeOutput, error) {
	if input.Shift < 0 {
		return nil, encodeOutput{}, fmt.Errorf("shift must be non-negative, got %d", input.Shift)
	}
	return nil, encodeOutput{Result: codec.Encode(input.Text, input.Shift)}, nil
}

func (s *Server) handleDecode(ctx context.Context, _ *sdkmcp.CallToolRequest, input decodeInput) (*sdkmcp.CallToolResult, decodeOutput, error) {
	if input.Shift < 0 {
		return nil, decodeOutput{}, fmt.Errorf("shift must be non-negative, got %d", input.Shift)
	}
	return nil, decodeOutput{Result: codec.Decode(input.Text, input.Shift)}, nil
}

func (s *Server) handleCheckExercise(ctx context.Context, _ *sdkmcp.CallToolRequest, input checkExerciseInput) (*sdkmcp.CallToolResult, checkExerciseOutput, error) {
	logger := logging.New("mcp")
	if input.Path == "" {
		return nil, checkExerciseOutput{}, fmt.Errorf("path is required")
	}
	path := input.Path
	if s.ProjectRoot != "" && !filepath.IsAbs(path) {
		path = filepath.Join(s.ProjectRoot, path)
	}

	set, err := exercise.Load(path)
	if err != nil {
		return nil, checkExerciseOutput{}, err
	}
	results, sum, err := exercise.Runner{Parallel: input.Parallel}.Run(ctx, set)
	if err != nil {
		return nil, checkExerciseOutput{}, fmt.Errorf("run exercise set: %w", err)
	}

	out := checkExerciseOutput{
		SetName: set.Name,
		Passed:  sum.Passed,
		Failed:  sum.Failed,
		Skipped: sum.Skipped,
	}
	for _, r := range results {
		cv := caseVerdict{Name: r.Case.Name, Verdict: string(r.Verdict), Got: r.Got}
		if r.Verdict == exercise.VerdictFail {
			cv.Want = r.Case.Expected
		}
		out.Cases = append(out.Cases, cv)
	}
	logger.Info("checked exercise set", "set", set.Name,
		"passed", sum.Passed, "failed", sum.Failed, "skipped", sum.Skipped)
	return nil, out, nil
}

func (s *Server) handleCrack(ctx context.Context, _ *sdkmcp.CallToolRequest, input crackInput) (*sdkmcp.CallToolResult, crackOutput, error) {
	topN := input.TopN
	if topN <= 0 {
		topN = DefaultCrackCandidates
	}
	cands := analyze.Crack(input.Text)
	if topN > len(cands) {
		topN = len(cands)
	}
	out := crackOutput{Candidates: make([]crackCandidate, 0, topN)}
	for _, c := range cands[:topN] {
		out.Candidates = append(out.Candidates, crackCandidate{
			Shift:   c.Shift,
			Score:   c.Score,
			Preview: c.Preview,
		})
	}
	return nil, out, nil
}
