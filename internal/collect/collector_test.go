package collect

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/readmegen/internal/logging"
	"github.com/vvka-141/readmegen/pkg/readmegen"
)

const scalarPrompts = 10

func resolvedRecord() readmegen.Record {
	rec := readmegen.DefaultRecord()
	rec.ProjectName = "lib"
	rec.Author = "octo"
	rec.GitHubUsername = "octo"
	rec.RepositoryName = "lib"
	rec.License = "MIT"
	return rec
}

func script(parts ...[]answer) []answer {
	var out []answer
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func newTestCollector(p readmegen.Prompter, policy SecondaryPolicy) (*Collector, *bytes.Buffer) {
	var out bytes.Buffer
	return New(p, &out, logging.NewNullLogger(), policy), &out
}

func TestCollect_KeepsResolvedValuesAndAppendsLists(t *testing.T) {
	p := &scriptedPrompter{answers: script(
		keepAll(scalarPrompts),
		[]answer{text("Fast"), text("It is fast"), confirm(true), text("Small"), keep(), confirm(false)},
		[]answer{text("Go"), text("https://go.dev"), confirm(false)},
	)}
	c, out := newTestCollector(p, AllowEmptySecondary)
	rec := resolvedRecord()

	require.NoError(t, c.Collect(context.Background(), &rec, nil))

	want := resolvedRecord()
	want.Features = []readmegen.Feature{{Name: "Fast", Text: "It is fast"}, {Name: "Small", Text: ""}}
	want.Technologies = []readmegen.Technology{{Name: "Go", Link: "https://go.dev"}}
	assert.Equal(t, want, rec)

	assert.Contains(t, out.String(), "--- Features ---")
	assert.Contains(t, out.String(), "--- Technologies ---")
	assert.Empty(t, p.answers, "every scripted answer should be consumed")
}

func TestCollect_AsksScalarsInFixedOrder(t *testing.T) {
	p := &scriptedPrompter{answers: script(keepAll(scalarPrompts), []answer{text("")}, []answer{text("")})}
	c, _ := newTestCollector(p, AllowEmptySecondary)
	rec := resolvedRecord()

	require.NoError(t, c.Collect(context.Background(), &rec, nil))

	assert.Equal(t, []string{
		"Project name",
		"Project description",
		"Project version",
		"Author name",
		"Project license",
		"GitHub username",
		"Repository name (on GitHub)",
		"Main programming language",
		"Would you like to include a logo in your README?",
		"Would you like to include a preview section in your README?",
		FeatureList.PrimaryMessage,
		TechnologyList.PrimaryMessage,
	}, p.questions)
}

func TestCollect_EditsReplaceFields(t *testing.T) {
	p := &scriptedPrompter{answers: script(
		[]answer{text("renamed"), text("A library"), text("2.0.0"), keep(), text("Apache-2.0"), keep(), keep(), text("Go")},
		[]answer{choose(0), choose(1)},
		[]answer{text("")}, []answer{text("")},
	)}
	c, _ := newTestCollector(p, AllowEmptySecondary)
	rec := resolvedRecord()
	rec.Preview = true

	require.NoError(t, c.Collect(context.Background(), &rec, nil))

	assert.Equal(t, "renamed", rec.ProjectName)
	assert.Equal(t, "A library", rec.Description)
	assert.Equal(t, "2.0.0", rec.Version)
	assert.Equal(t, "octo", rec.Author)
	assert.Equal(t, "Apache-2.0", rec.License)
	assert.Equal(t, "lib", rec.RepositoryName, "editing the project name does not touch the repository name")
	assert.Equal(t, "Go", rec.MainLanguage)
	assert.True(t, rec.Logo)
	assert.False(t, rec.Preview)
}

func TestCollect_BooleanSelectDefaultsReflectRecord(t *testing.T) {
	p := &scriptedPrompter{answers: script(keepAll(scalarPrompts), []answer{text("")}, []answer{text("")})}
	c, _ := newTestCollector(p, AllowEmptySecondary)
	rec := resolvedRecord()
	rec.Logo = true

	require.NoError(t, c.Collect(context.Background(), &rec, nil))

	assert.True(t, rec.Logo)
	assert.False(t, rec.Preview)
}

func TestCollect_ExplicitFieldsAreAnnouncedNotAsked(t *testing.T) {
	explicit := readmegen.FieldSet{}
	explicit.Add(readmegen.FieldProjectName)
	explicit.Add(readmegen.FieldVersion)
	explicit.Add(readmegen.FieldLogo)

	p := &scriptedPrompter{answers: script(keepAll(scalarPrompts-3), []answer{text("")}, []answer{text("")})}
	c, out := newTestCollector(p, AllowEmptySecondary)
	rec := resolvedRecord()
	rec.Version = "3.1.4"

	require.NoError(t, c.Collect(context.Background(), &rec, explicit))

	assert.NotContains(t, p.questions, "Project name")
	assert.NotContains(t, p.questions, "Project version")
	assert.NotContains(t, p.questions, "Would you like to include a logo in your README?")
	assert.Contains(t, out.String(), `Project name: "lib" (from CLI option)`)
	assert.Contains(t, out.String(), `Project version: "3.1.4" (from CLI option)`)
	assert.Contains(t, out.String(), `Would you like to include a logo in your README?: "false" (from CLI option)`)
}

func TestCollect_EmptyProjectNameIsReasked(t *testing.T) {
	p := &scriptedPrompter{answers: script(
		[]answer{keep(), text(""), text("lib")},
		keepAll(scalarPrompts-1),
		[]answer{text("")}, []answer{text("")},
	)}
	c, _ := newTestCollector(p, AllowEmptySecondary)
	rec := readmegen.DefaultRecord()

	require.NoError(t, c.Collect(context.Background(), &rec, nil))

	assert.Equal(t, "lib", rec.ProjectName)
	assert.Equal(t, []string{"Project name cannot be empty", "Project name cannot be empty"}, p.rejected)
}

func TestCollect_InputExhaustedDuringScalarsKeepsValues(t *testing.T) {
	p := &scriptedPrompter{answers: []answer{keep(), text("described")}}
	c, _ := newTestCollector(p, AllowEmptySecondary)
	rec := resolvedRecord()

	require.NoError(t, c.Collect(context.Background(), &rec, nil))

	assert.Equal(t, "lib", rec.ProjectName)
	assert.Equal(t, "described", rec.Description)
	assert.Equal(t, "1.0.0", rec.Version)
	assert.Empty(t, rec.Features)
	assert.NotContains(t, p.questions, FeatureList.PrimaryMessage)
}

func TestCollect_InputExhaustedDuringListsKeepsEntries(t *testing.T) {
	p := &scriptedPrompter{answers: script(
		keepAll(scalarPrompts),
		[]answer{text("Fast"), text("It is fast")},
	)}
	c, _ := newTestCollector(p, AllowEmptySecondary)
	rec := resolvedRecord()

	require.NoError(t, c.Collect(context.Background(), &rec, nil))

	assert.Equal(t, []readmegen.Feature{{Name: "Fast", Text: "It is fast"}}, rec.Features)
	assert.Empty(t, rec.Technologies)
}

func TestCollect_PromptErrorsAreReturned(t *testing.T) {
	boom := errors.New("terminal lost")

	t.Run("scalar", func(t *testing.T) {
		p := &scriptedPrompter{answers: []answer{keep(), fail(boom)}}
		c, _ := newTestCollector(p, AllowEmptySecondary)
		rec := resolvedRecord()

		err := c.Collect(context.Background(), &rec, nil)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "description")
	})

	t.Run("list", func(t *testing.T) {
		p := &scriptedPrompter{answers: script(keepAll(scalarPrompts), []answer{text("Fast"), fail(boom)})}
		c, _ := newTestCollector(p, AllowEmptySecondary)
		rec := resolvedRecord()

		err := c.Collect(context.Background(), &rec, nil)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, rec.Features)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := &scriptedPrompter{answers: keepAll(scalarPrompts)}
		c, _ := newTestCollector(p, AllowEmptySecondary)
		rec := resolvedRecord()

		assert.ErrorIs(t, c.Collect(ctx, &rec, nil), context.Canceled)
	})
}

func TestListCollector_EmptyNameStopsWithoutAppending(t *testing.T) {
	p := &scriptedPrompter{answers: []answer{text("Fast"), text("x"), confirm(true), text("   ")}}
	var out bytes.Buffer
	lc := NewListCollector(p, &out, logging.NewNullLogger(), AllowEmptySecondary, FeatureList,
		func(pair Pair) readmegen.Feature { return readmegen.Feature{Name: pair.Primary, Text: pair.Secondary} })

	got, err := lc.Collect(context.Background(), []readmegen.Feature{{Name: "Existing"}})
	require.NoError(t, err)

	assert.Equal(t, []readmegen.Feature{{Name: "Existing"}, {Name: "Fast", Text: "x"}}, got)
	assert.Contains(t, out.String(), "Skipping feature as name was empty.")
	assert.NotContains(t, p.questions[len(p.questions)-1], "description", "no secondary question after an empty name")
}

func TestListCollector_SecondaryPolicy(t *testing.T) {
	answers := func() []answer {
		return []answer{text("React"), text(""), confirm(true), text("Go"), text("https://go.dev"), confirm(false)}
	}
	build := func(pair Pair) readmegen.Technology { return readmegen.Technology{Name: pair.Primary, Link: pair.Secondary} }

	tests := []struct {
		policy SecondaryPolicy
		want   []readmegen.Technology
	}{
		{AllowEmptySecondary, []readmegen.Technology{{Name: "React"}, {Name: "Go", Link: "https://go.dev"}}},
		{RequireSecondary, []readmegen.Technology{{Name: "Go", Link: "https://go.dev"}}},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			p := &scriptedPrompter{answers: answers()}
			var out bytes.Buffer
			lc := NewListCollector(p, &out, logging.NewNullLogger(), tt.policy, TechnologyList, build)

			got, err := lc.Collect(context.Background(), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 2, countOf(p.questions, TechnologyList.ContinueMessage), "continue is asked after every named entry")
		})
	}
}

func TestListCollector_SourceStopsWhenConsumerBreaks(t *testing.T) {
	p := &scriptedPrompter{answers: []answer{text("a"), text("b"), confirm(true), text("c"), text("d")}}
	lc := NewListCollector(p, &bytes.Buffer{}, logging.NewNullLogger(), AllowEmptySecondary, FeatureList,
		func(pair Pair) Pair { return pair })

	var got []Pair
	for pair, err := range lc.Source(context.Background()) {
		require.NoError(t, err)
		got = append(got, pair)
		break
	}

	assert.Equal(t, []Pair{{Primary: "a", Secondary: "b"}}, got)
	assert.NotContains(t, p.questions, FeatureList.ContinueMessage)
}

func TestSecondaryPolicy_String(t *testing.T) {
	assert.Equal(t, "allow-empty-secondary", AllowEmptySecondary.String())
	assert.Equal(t, "require-secondary", RequireSecondary.String())
	assert.Equal(t, "unknown", SecondaryPolicy(42).String())
}

func countOf(items []string, s string) int {
	n := 0
	for _, it := range items {
		if it == s {
			n++
		}
	}
	return n
}
