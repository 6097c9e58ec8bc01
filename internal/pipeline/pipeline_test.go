package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/resume"
	"github.com/jonathan/job-matcher/internal/types"
)

type fakeTextExtractor struct {
	text string
	err  error
}

func (f *fakeTextExtractor) ExtractText(string) (string, error) {
	return f.text, f.err
}

type fakeStructuredExtractor struct {
	data     *types.ResumeData
	err      error
	gotText  string
	numCalls int
}

func (f *fakeStructuredExtractor) Extract(_ context.Context, text string) (*types.ResumeData, error) {
	f.gotText = text
	f.numCalls++
	return f.data, f.err
}

func TestResumeParser_SuccessfulParse(t *testing.T) {
	data := &types.ResumeData{
		PersonalInfo: types.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
		Skills: types.SkillsData{
			Technical: []string{"Python", "Go"},
		},
	}
	structured := &fakeStructuredExtractor{data: data}
	parser := NewResumeParser(
		&fakeTextExtractor{text: "Ada Lovelace\nada@example.com"},
		structured,
		resume.NewBuilder(nil),
		nil,
	)

	profile := parser.Parse(context.Background(), "/tmp/resume.pdf", "user-1")
	require.NotNil(t, profile)
	assert.Equal(t, types.ParsingSuccess, profile.ParsingStatus)
	assert.Equal(t, "Ada Lovelace", profile.PersonalInfo.FullName)
	assert.Equal(t, []string{"python", "go"}, profile.Skills.AllSkillsNormalized)
	assert.Equal(t, "Ada Lovelace\nada@example.com", structured.gotText)
}

func TestResumeParser_ExtractionFailureYieldsFailedProfile(t *testing.T) {
	structured := &fakeStructuredExtractor{}
	parser := NewResumeParser(
		&fakeTextExtractor{err: errors.New("corrupt file")},
		structured,
		resume.NewBuilder(nil),
		nil,
	)

	profile := parser.Parse(context.Background(), "/tmp/resume.pdf", "user-1")
	require.NotNil(t, profile)
	assert.Equal(t, types.ParsingFailed, profile.ParsingStatus)
	assert.NotEmpty(t, profile.ParsingErrors)
	assert.Zero(t, structured.numCalls, "LLM stage must not run after extraction failure")
}

func TestResumeParser_StructuredFailureYieldsFailedProfile(t *testing.T) {
	parser := NewResumeParser(
		&fakeTextExtractor{text: "some resume text"},
		&fakeStructuredExtractor{err: errors.New("model returned invalid JSON")},
		resume.NewBuilder(nil),
		nil,
	)

	profile := parser.Parse(context.Background(), "/tmp/resume.pdf", "user-1")
	require.NotNil(t, profile)
	assert.Equal(t, types.ParsingFailed, profile.ParsingStatus)
	require.NotEmpty(t, profile.ParsingErrors)
	assert.Contains(t, profile.ParsingErrors[0], "invalid JSON")
}
