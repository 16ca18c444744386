package profilegen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyErrorBranches(t *testing.T) {
	networkErr := errors.New("failed to fetch: status code 502")

	tests := []struct {
		name     string
		err      error
		urls     []string
		contains []string
	}{
		{
			name:     "social media host wins",
			err:      networkErr,
			urls:     []string{"https://www.instagram.com/vera", "https://veramoreno.art"},
			contains: []string{"instagram.com", "block automated access", "connect your Instagram"},
		},
		{
			name:     "link aggregator host",
			err:      networkErr,
			urls:     []string{"https://linktr.ee/vera"},
			contains: []string{"linktr.ee", "individual links"},
		},
		{
			name:     "generic network failure echoes urls",
			err:      networkErr,
			urls:     []string{"https://example-portfolio.com/vera"},
			contains: []string{"https://example-portfolio.com/vera", "publicly accessible"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ClassifyError(tt.err, tt.urls)
			for _, fragment := range tt.contains {
				assert.Contains(t, msg, fragment)
			}
		})
	}
}

func TestClassifyErrorSocialBeatsAggregator(t *testing.T) {
	msg := ClassifyError(
		errors.New("network timeout"),
		[]string{"https://linktr.ee/vera", "https://x.com/vera"},
	)
	assert.Contains(t, msg, "x.com")
	assert.NotContains(t, msg, "linktr.ee block")
}

func TestClassifyErrorPassesThroughBusinessErrors(t *testing.T) {
	err := errors.New("generation quota exceeded for this account")
	msg := ClassifyError(err, []string{"https://www.instagram.com/vera"})
	assert.Equal(t, err.Error(), msg)
}
