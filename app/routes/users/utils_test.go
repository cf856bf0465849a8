package users

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"rh-portal/app/models"
)

func makeUsers(n int) []models.AdminUser {
	out := make([]models.AdminUser, n)
	for i := range out {
		out[i] = models.AdminUser{ID: fmt.Sprintf("u%d", i+1)}
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		wantLen   int
		wantPage  int
		wantPages int
		wantFirst string
	}{
		{"empty collection", 0, 1, 0, 1, 1, ""},
		{"single short page", 3, 1, 3, 1, 1, "u1"},
		{"exact page boundary", 10, 2, 5, 2, 2, "u6"},
		{"last partial page", 12, 3, 2, 3, 3, "u11"},
		{"page below range clamps to first", 12, 0, 5, 1, 3, "u1"},
		{"page above range clamps to last", 12, 99, 2, 3, 3, "u11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, page, totalPages := paginate(makeUsers(tt.total), tt.page, pageSize)
			assert.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPages, totalPages)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, got[0].ID)
			}
		})
	}
}
