package domain_test

import (
	"testing"

	"github.com/qendev/mars_realestate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{name: "empty array", payload: "[]", want: 0},
		{name: "whitespace around", payload: "  [ ]\n", want: 0},
		{
			name: "three properties",
			payload: `[
				{"price":450000,"id":"424905","type":"buy","img_src":"http://mars.jpl.nasa.gov/msl-raw-images/msss/01000/mcam/1000MR0044631300503690E01_DXXX.jpg"},
				{"price":8000000,"id":"424906","type":"rent","img_src":"http://mars.jpl.nasa.gov/msl-raw-images/msss/01000/mcam/1000ML0044631300305227E03_DXXX.jpg"},
				{"price":11000000,"id":"424907","type":"rent","img_src":"http://mars.jpl.nasa.gov/msl-raw-images/msss/01000/mcam/1000MR0044631290503689E01_DXXX.jpg"}
			]`,
			want: 3,
		},
		{name: "nested arrays count once", payload: `[[1,2],[3],{"a":[4,5,6]}]`, want: 3},
		{name: "scalars", payload: `[1,"two",null,true]`, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := domain.CountProperties(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountProperties_Malformed(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{
		"",
		"{}",
		`"[]"`,
		"[1,2",
		"[1,,2]",
		"[] []",
		"<html>not found</html>",
	} {
		t.Run(payload, func(t *testing.T) {
			t.Parallel()

			_, err := domain.CountProperties(payload)
			require.ErrorIs(t, err, domain.ErrMalformedPayload)
		})
	}
}

func TestStatusMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success: 0 Mars properties retrieved", domain.StatusMessage(0))
	assert.Equal(t, "Success: 3 Mars properties retrieved", domain.StatusMessage(3))
}

func TestFetchState_IsFinished(t *testing.T) {
	t.Parallel()

	assert.False(t, domain.FetchStateIdle.IsFinished())
	assert.False(t, domain.FetchStateFetching.IsFinished())
	assert.True(t, domain.FetchStateSucceeded.IsFinished())
	assert.True(t, domain.FetchStateFailed.IsFinished())
}
