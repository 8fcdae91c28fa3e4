package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	input := "line one\r\nline two\rline three"

	result := CleanText(input)

	assert.Equal(t, "line one\nline two\nline three", result)
}

func TestCleanText_CollapsesBlankRuns(t *testing.T) {
	input := "Summary\n\n\n\n\nExperience"

	result := CleanText(input)

	assert.Equal(t, "Summary\n\nExperience", result)
}

func TestCleanText_PreservesBullets(t *testing.T) {
	input := "Experience:\n- Built APIs with Express\n  - Deployed via Docker\n• Mentored juniors"

	result := CleanText(input)

	assert.Contains(t, result, "- Built APIs with Express")
	assert.Contains(t, result, "  - Deployed via Docker")
	assert.Contains(t, result, "• Mentored juniors")
}

func TestCleanText_CollapsesInternalSpaces(t *testing.T) {
	result := CleanText("React,    TypeScript\t\tand  Node.js")

	assert.Equal(t, "React, TypeScript and Node.js", result)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("  \n\t \r\n "))
}

func TestExtractResumeText_PlainTextPassesThrough(t *testing.T) {
	text := "Built APIs with Node.js and Express, deployed via Docker"

	assert.Equal(t, text, ExtractResumeText(text))
}

func TestExtractResumeText_AngleBracketsAloneAreNotHTML(t *testing.T) {
	text := "Optimized queries so latency < 100ms for p99"

	assert.Equal(t, text, ExtractResumeText(text))
}

func TestExtractResumeText_HTMLStripsMarkupAndNoise(t *testing.T) {
	html := `<!DOCTYPE html>
<html><head><style>body { color: red; }</style></head>
<body>
<nav>Home | About</nav>
<main>
<p>Senior engineer with React and PostgreSQL experience.</p>
<script>console.log("tracking");</script>
</main>
<footer>footer text</footer>
</body></html>`

	result := ExtractResumeText(html)

	assert.Contains(t, result, "Senior engineer with React and PostgreSQL experience.")
	assert.NotContains(t, result, "color: red")
	assert.NotContains(t, result, "tracking")
	assert.NotContains(t, result, "Home | About")
	assert.NotContains(t, result, "footer text")
}

func TestExtractResumeText_HTMLWithoutMainFallsBackToBody(t *testing.T) {
	html := `<html><body><div>Docker and Kubernetes projects</div></body></html>`

	result := ExtractResumeText(html)

	assert.Contains(t, result, "Docker and Kubernetes projects")
}

func TestReadResumeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python and Django\r\n\r\n\r\nAWS"), 0644))

	text, err := ReadResumeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Python and Django\n\nAWS", text)
}

func TestReadResumeFile_Missing(t *testing.T) {
	_, err := ReadResumeFile(filepath.Join(t.TempDir(), "nope.txt"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
