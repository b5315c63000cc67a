package session

import "vesselBooker/internal/models"

// Pure reducers over the full collection. The controller applies these
// with the record the data layer returned instead of re-fetching, so the
// merge logic stays testable without any asynchronous plumbing.

func applyCreate(all []models.Booking, created models.Booking) []models.Booking {
	result := make([]models.Booking, 0, len(all)+1)
	result = append(result, all...)
	return append(result, created)
}

func applyUpdate(all []models.Booking, updated models.Booking) []models.Booking {
	result := make([]models.Booking, len(all))
	copy(result, all)

	for i, b := range result {
		if b.ID == updated.ID {
			result[i] = updated
			break
		}
	}

	return result
}

func applyDelete(all []models.Booking, id string) []models.Booking {
	result := make([]models.Booking, 0, len(all))

	for _, b := range all {
		if b.ID != id {
			result = append(result, b)
		}
	}

	return result
}
