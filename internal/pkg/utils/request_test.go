package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationRequest(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults when params absent", "", 1, 10},
		{"zero values clamp up", "?page=0&limit=0", 1, 10},
		{"negative page and oversized limit clamp", "?page=-3&limit=1000", 1, 100},
		{"valid values pass through", "?page=2&limit=10", 2, 10},
		{"limit at the cap passes through", "?page=1&limit=100", 1, 100},
		{"unparseable values fall back to defaults", "?page=abc&limit=xyz", 1, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/patients/get-patients"+tc.query, nil)
			pagination := BuildPaginationRequest(r)
			assert.Equal(t, tc.wantPage, pagination.Page)
			assert.Equal(t, tc.wantLimit, pagination.Limit)
		})
	}
}
