package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilledFieldCountCountsScalarsAndSequences(t *testing.T) {
	draft := &ProfileDraft{
		Name:        "Vera",
		Bio:         "ceramics from the coast",
		Techniques:  []string{"wheel throwing"},
		Styles:      []string{},
		SocialLinks: []string{"https://vera.example"},
	}

	assert.Equal(t, 4, draft.FilledFieldCount())
}

func TestFilledFieldCountNilDraft(t *testing.T) {
	var draft *ProfileDraft
	assert.Equal(t, 0, draft.FilledFieldCount())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, (&ProfileDraft{Techniques: []string{}, Styles: []string{}, SocialLinks: []string{}}).IsEmpty())
	assert.False(t, (&ProfileDraft{City: "Lisbon"}).IsEmpty())
}

func TestApplyDraftMergesNonEmptyFieldsOnly(t *testing.T) {
	profile := NewArtistProfile("user-1")
	profile.Name = "Old Name"
	profile.Bio = "old bio"
	profile.Techniques = []string{"engraving"}

	profile.ApplyDraft(&ProfileDraft{
		Name:   "New Name",
		City:   "Porto",
		Styles: []string{"minimalism"},
	})

	assert.Equal(t, "New Name", profile.Name)
	assert.Equal(t, "old bio", profile.Bio, "empty draft field must not clear existing value")
	assert.Equal(t, "Porto", profile.City)
	assert.Equal(t, []string{"engraving"}, []string(profile.Techniques))
	assert.Equal(t, []string{"minimalism"}, []string(profile.Styles))
}

func TestApplyDraftNilIsNoop(t *testing.T) {
	profile := NewArtistProfile("user-1")
	profile.Name = "Keep"

	profile.ApplyDraft(nil)

	assert.Equal(t, "Keep", profile.Name)
}
