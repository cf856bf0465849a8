package users

import "rh-portal/app/models"

// paginate slices one fixed-size page out of the collection, clamping the
// requested page into range. A short or empty collection is a single page.
func paginate(all []models.AdminUser, page, size int) ([]models.AdminUser, int, int) {
	totalPages := (len(all) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * size
	end := start + size
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], page, totalPages
}
