// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/profile-site/internal/export"
	"github.com/pdiddy/profile-site/pkg/types"
)

func TestDefaultProfile(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Dr. Alex Morgan", p.Name)
	assert.Equal(t, "alex.morgan@example.edu", p.Email)
	require.Len(t, p.Publications, 4)
	assert.Len(t, p.ResearchAreas, 3)
	assert.Len(t, p.Projects, 3)
	assert.Len(t, p.Teaching, 2)
	assert.Len(t, p.Service, 3)

	deepgene, ok := p.Publication("morgan2024deepgene")
	require.True(t, ok)
	assert.Equal(t, 2024, deepgene.Year)
	assert.Equal(t, []string{"Deep Learning", "Genomics", "Interpretability"}, deepgene.Tags)
	assert.False(t, deepgene.HasPDF(), "placeholder pdf link counts as absent")

	repro, ok := p.Publication("morgan2022repro")
	require.True(t, ok)
	assert.Empty(t, repro.DOI)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Alex Morgan", p.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading profile")
}

func TestParseRejectsInvalidPublications(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "duplicate id",
			yaml: `publications:
  - {id: a, title: A, year: 2020}
  - {id: a, title: B, year: 2021}
`,
			wantErr: ErrDuplicateID,
		},
		{
			name:    "missing id",
			yaml:    "publications:\n  - {title: A, year: 2020}\n",
			wantErr: ErrInvalidPublication,
		},
		{
			name:    "zero year",
			yaml:    "publications:\n  - {id: a, title: A}\n",
			wantErr: ErrInvalidPublication,
		},
		{
			name:    "path in id",
			yaml:    "publications:\n  - {id: ../../escaped, title: A, year: 2020}\n",
			wantErr: ErrInvalidPublication,
		},
		{
			name:    "space and comma in id",
			yaml:    "publications:\n  - {id: \"smith 2020, draft\", title: A, year: 2020}\n",
			wantErr: ErrInvalidPublication,
		},
		{
			name:    "brace in id",
			yaml:    "publications:\n  - {id: \"a}b\", title: A, year: 2020}\n",
			wantErr: ErrInvalidPublication,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("publications: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing profile")
}

func TestWriteThenLoad(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, Write(path, p))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestWriteRejectsInvalidProfile(t *testing.T) {
	p := &types.Profile{Publications: []types.Publication{{ID: "x"}}}
	path := filepath.Join(t.TempDir(), "profile.yaml")

	err := Write(path, p)
	assert.ErrorIs(t, err, ErrInvalidPublication)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "invalid profile must not be written")
}

func TestParseFoldsMultiLineFields(t *testing.T) {
	p, err := Parse([]byte(`publications:
  - id: smith2020:draft-1.b
    title: |
      Two line
      title
    venue: >
      Journal of
      Things
    authors: ["J.  Smith"]
    year: 2020
`))
	require.NoError(t, err)
	pub := p.Publications[0]
	assert.Equal(t, "Two line title", pub.Title)
	assert.Equal(t, "Journal of Things", pub.Venue)
	assert.Equal(t, []string{"J. Smith"}, pub.Authors)
}

func TestValidateRejectsMultiLineTitle(t *testing.T) {
	p := &types.Profile{Publications: []types.Publication{{ID: "a", Title: "one\ntwo", Year: 2020}}}
	assert.ErrorIs(t, Validate(p), ErrInvalidPublication)
}

func TestLoadedPublicationsRoundTripThroughBibTeX(t *testing.T) {
	p, err := Parse([]byte(`publications:
  - id: smith2020:draft-1.b
    title: |
      Two line
      title
    venue: Journal
    authors: [J. Smith]
    year: 2020
`))
	require.NoError(t, err)

	def, err := Default()
	require.NoError(t, err)

	for _, pub := range append(p.Publications, def.Publications...) {
		e, err := export.ParseBibTeX(export.ToBibTeX(pub))
		require.NoError(t, err, pub.ID)
		assert.Equal(t, pub.ID, e.Key)
		assert.Equal(t, pub.Title, e.Fields["title"])
	}
}
