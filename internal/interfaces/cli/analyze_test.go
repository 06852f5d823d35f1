package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takweol/casematch/internal/analysis"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommandText(t *testing.T) {
	out, err := runCommand(t, "analyze", "월급을 석 달째 받지 못하고 있습니다")
	require.NoError(t, err)
	assert.Contains(t, out, "임금 체불")
	assert.Contains(t, out, "wage_theft")
	assert.Contains(t, out, "Win rate:")
}

func TestAnalyzeCommandJSONOutput(t *testing.T) {
	out, err := runCommand(t, "analyze", "-o", "json", "이혼하면서 위자료를 청구하려고 합니다")
	require.NoError(t, err)

	var result analysis.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "divorce", result.PrimaryCase.ID)
}

func TestAnalyzeCommandNoMatch(t *testing.T) {
	out, err := runCommand(t, "analyze", "hello there")
	require.NoError(t, err)
	assert.Contains(t, out, "No case category matched")
}

func TestAnalyzeCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.json")
	transcript := `[
		{"role": "user", "text": "전세 계약이 끝났는데 보증금을 못 받고 있어요"},
		{"role": "assistant", "text": "언제 계약이 만료되었나요?"},
		{"role": "user", "text": "집주인이 연락을 피하고 있습니다"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(transcript), 0o644))

	out, err := runCommand(t, "analyze", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "real_estate")
	assert.Contains(t, out, "Progress:       50%")
}

func TestAnalyzeCommandRejectsBadInput(t *testing.T) {
	_, err := runCommand(t, "analyze")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "transcript"))

	_, err = runCommand(t, "analyze", "--complexity", "extreme", "이혼")
	require.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	out, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:")
}
