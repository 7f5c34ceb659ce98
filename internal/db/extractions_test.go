package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func TestBuildListQuery_Defaults(t *testing.T) {
	query, args := buildListQuery(ExtractionFilters{})

	assert.Contains(t, query, "ORDER BY extracted_at DESC LIMIT $1")
	assert.NotContains(t, query, "email =")
	assert.NotContains(t, query, "name ILIKE")
	require.Len(t, args, 1)
	assert.Equal(t, 50, args[0])
}

func TestBuildListQuery_EmailFilter(t *testing.T) {
	query, args := buildListQuery(ExtractionFilters{Email: "jane@example.com", Limit: 10})

	assert.Contains(t, query, "email = $1")
	assert.Contains(t, query, "LIMIT $2")
	require.Len(t, args, 2)
	assert.Equal(t, "jane@example.com", args[0])
	assert.Equal(t, 10, args[1])
}

func TestBuildListQuery_AllFilters(t *testing.T) {
	query, args := buildListQuery(ExtractionFilters{Email: "jane@example.com", Name: "Jane", Limit: 5})

	assert.Contains(t, query, "email = $1")
	assert.Contains(t, query, "name ILIKE $2")
	assert.Contains(t, query, "LIMIT $3")
	require.Len(t, args, 3)
	assert.Equal(t, "%Jane%", args[1])
}

func TestRecordRoundTripsThroughJSON(t *testing.T) {
	// The record column stores the full record as JSONB, so the struct must
	// survive a marshal/unmarshal cycle without losing fields.
	record := types.NewResumeRecord("resume.pdf")
	record.Name = "Jane Doe"
	record.Email = "jane@example.com"
	record.Phones = []string{"5551234567"}
	record.Experience = []types.ExperienceEntry{
		{Dates: "2019 - 2021", Title: "Engineer", Company: "Acme", Description: "Built things."},
	}
	record.YearsExperience = 2

	jsonBytes, err := json.Marshal(record)
	require.NoError(t, err)

	var loaded types.ResumeRecord
	require.NoError(t, json.Unmarshal(jsonBytes, &loaded))

	assert.Equal(t, record.ID, loaded.ID)
	assert.True(t, record.ContentEqual(&loaded))
}
