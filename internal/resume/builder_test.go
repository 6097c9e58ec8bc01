package resume

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestFlattenSkills_NormalizesAndKeepsDuplicates(t *testing.T) {
	flat := FlattenSkills(types.SkillsData{
		Technical:            []string{"Python ", "PYTHON"},
		ProgrammingLanguages: []string{"react"},
	})

	assert.Equal(t, []string{"python", "python", "react"}, flat)
}

func TestFlattenSkills_DropsEmptyEntries(t *testing.T) {
	flat := FlattenSkills(types.SkillsData{
		Technical:       []string{"", "  ", "Go"},
		Soft:            []string{"Communication"},
		ToolsFrameworks: []string{"Docker "},
	})

	assert.Equal(t, []string{"go", "communication", "docker"}, flat)
}

func TestTotalYearsExperience_ClosedRange(t *testing.T) {
	b := NewBuilder(nil, WithClock(fixedClock(2025, time.January)))

	years := b.totalYearsExperience([]types.WorkExperience{
		{Company: "Acme", StartDate: "2020-01", EndDate: "2023-01"},
	})

	assert.Equal(t, 3.0, years)
}

func TestTotalYearsExperience_CurrentPositionUsesNow(t *testing.T) {
	b := NewBuilder(nil, WithClock(func() time.Time {
		return time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	}))

	years := b.totalYearsExperience([]types.WorkExperience{
		{Company: "Acme", StartDate: "2020-06", EndDate: "Present"},
	})

	assert.Equal(t, 3.0, years)
}

func TestTotalYearsExperience_IsCurrentFlag(t *testing.T) {
	b := NewBuilder(nil, WithClock(func() time.Time {
		return time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	}))

	years := b.totalYearsExperience([]types.WorkExperience{
		{Company: "Acme", StartDate: "2021-06", IsCurrent: true},
	})

	assert.Equal(t, 2.0, years)
}

func TestTotalYearsExperience_SkipsUnparseableEntries(t *testing.T) {
	b := NewBuilder(nil, WithClock(fixedClock(2025, time.January)))

	years := b.totalYearsExperience([]types.WorkExperience{
		{Company: "NoStart", EndDate: "2022-01"},
		{Company: "BadStart", StartDate: "sometime", EndDate: "2022-01"},
		{Company: "NoEnd", StartDate: "2020-01"},
		{Company: "Good", StartDate: "2020-01", EndDate: "2022-01"},
	})

	assert.Equal(t, 2.0, years)
}

func TestTotalYearsExperience_YearTokenFallback(t *testing.T) {
	b := NewBuilder(nil, WithClock(fixedClock(2025, time.January)))

	// "mid 2019" is not a layout match but carries a year token.
	years := b.totalYearsExperience([]types.WorkExperience{
		{Company: "Acme", StartDate: "mid 2019", EndDate: "mid 2021"},
	})

	assert.Equal(t, 2.0, years)
}

func TestTotalYearsExperience_NegativeRangeClampedToZero(t *testing.T) {
	b := NewBuilder(nil, WithClock(fixedClock(2025, time.January)))

	years := b.totalYearsExperience([]types.WorkExperience{
		{Company: "Backwards", StartDate: "2023-01", EndDate: "2020-01"},
		{Company: "Good", StartDate: "2020-01", EndDate: "2021-01"},
	})

	assert.Equal(t, 1.0, years)
}

func TestExperienceLevel_Thresholds(t *testing.T) {
	assert.Equal(t, types.LevelEntry, ExperienceLevel(0))
	assert.Equal(t, types.LevelEntry, ExperienceLevel(1.9))
	assert.Equal(t, types.LevelMid, ExperienceLevel(2))
	assert.Equal(t, types.LevelMid, ExperienceLevel(4.9))
	assert.Equal(t, types.LevelSenior, ExperienceLevel(5))
	assert.Equal(t, types.LevelSenior, ExperienceLevel(9.9))
	assert.Equal(t, types.LevelLead, ExperienceLevel(10))
	assert.Equal(t, types.LevelLead, ExperienceLevel(25))
}

func TestBuild_DerivedFields(t *testing.T) {
	b := NewBuilder(nil, WithClock(fixedClock(2025, time.January)))

	profile := b.Build(&types.ResumeData{
		PersonalInfo: types.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"},
		Skills: types.SkillsData{
			ProgrammingLanguages: []string{"Python", "SQL"},
		},
		WorkExperience: []types.WorkExperience{
			{Company: "Acme", StartDate: "2021-01", EndDate: "2025-01"},
		},
	}, "user-1")

	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, types.ParsingSuccess, profile.ParsingStatus)
	assert.Equal(t, 4.0, profile.TotalYearsExperience)
	assert.Equal(t, types.LevelMid, profile.ExperienceLevel)
	assert.Equal(t, []string{"python", "sql"}, profile.Skills.AllSkillsNormalized)
	// name 10 + email 5 + 2 skills * 2 + 1 work entry * 10 = 29
	assert.Equal(t, 29, profile.ProfileCompleteness)
}

func TestCompleteness_MonotonicAndCapped(t *testing.T) {
	base := &types.CandidateProfile{}
	assert.Equal(t, 0, completeness(base))

	prev := 0
	grow := []func(*types.CandidateProfile){
		func(p *types.CandidateProfile) { p.PersonalInfo.FullName = "Jane" },
		func(p *types.CandidateProfile) { p.PersonalInfo.Email = "j@x.com" },
		func(p *types.CandidateProfile) { p.PersonalInfo.Phone = "555" },
		func(p *types.CandidateProfile) { p.PersonalInfo.Location = "NYC" },
		func(p *types.CandidateProfile) { p.PersonalInfo.GitHubURL = "https://github.com/jane" },
		func(p *types.CandidateProfile) {
			p.Skills.AllSkillsNormalized = []string{"go", "sql", "docker", "python"}
		},
		func(p *types.CandidateProfile) {
			p.WorkExperience = []types.WorkExperience{{Company: "A"}, {Company: "B"}}
		},
		func(p *types.CandidateProfile) { p.Education = []types.Education{{Degree: "BSc"}} },
		func(p *types.CandidateProfile) { p.Certifications = []types.Certification{{Name: "CKA"}} },
		func(p *types.CandidateProfile) { p.Projects = []types.Project{{Name: "side"}} },
	}
	for _, add := range grow {
		add(base)
		got := completeness(base)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}

	// Max out every bucket; score must cap at 100.
	for i := 0; i < 30; i++ {
		base.Skills.AllSkillsNormalized = append(base.Skills.AllSkillsNormalized, "skill")
		base.WorkExperience = append(base.WorkExperience, types.WorkExperience{Company: "C"})
	}
	assert.Equal(t, 100, completeness(base))
}

func TestCompleteness_EitherSocialLinkCountsOnce(t *testing.T) {
	withBoth := completeness(&types.CandidateProfile{
		PersonalInfo: types.PersonalInfo{
			LinkedInURL: "https://linkedin.com/in/jane",
			GitHubURL:   "https://github.com/jane",
		},
	})
	withOne := completeness(&types.CandidateProfile{
		PersonalInfo: types.PersonalInfo{GitHubURL: "https://github.com/jane"},
	})

	assert.Equal(t, 5, withBoth)
	assert.Equal(t, withOne, withBoth)
}

func TestFailedProfile_Skeleton(t *testing.T) {
	b := NewBuilder(nil, WithClock(fixedClock(2025, time.January)))

	profile := b.FailedProfile("user-9", errors.New("insufficient text extracted from resume"))

	require.NotNil(t, profile)
	assert.Equal(t, "user-9", profile.UserID)
	assert.Equal(t, types.ParsingFailed, profile.ParsingStatus)
	assert.Equal(t, []string{"insufficient text extracted from resume"}, profile.ParsingErrors)
	assert.Zero(t, profile.TotalYearsExperience)
	assert.Empty(t, profile.Skills.AllSkillsNormalized)
}

func TestParseFlexibleDate_Layouts(t *testing.T) {
	cases := map[string]time.Time{
		"2020-01":      time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		"Jan 2020":     time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		"January 2020": time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		"03/2021":      time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
		"2019":         time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC),
		"around 1998":  time.Date(1998, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	for input, want := range cases {
		got, err := parseFlexibleDate(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want.Year(), got.Year(), "input %q", input)
		assert.Equal(t, want.Month(), got.Month(), "input %q", input)
	}
}

func TestParseFlexibleDate_Unparseable(t *testing.T) {
	_, err := parseFlexibleDate("soon")
	assert.Error(t, err)

	_, err = parseFlexibleDate("")
	assert.Error(t, err)
}
