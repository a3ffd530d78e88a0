package service

import (
	"encoding/json"
	"fmt"

	"spa_booking/internal/model"
	"spa_booking/internal/store"
)

// decodeUser maps a Login collection record onto a UserAccount.
func decodeUser(rec store.Record) (model.UserAccount, error) {
	var user model.UserAccount
	if err := decodeRecord(rec, &user); err != nil {
		return model.UserAccount{}, err
	}
	user.ID = rec.ID
	return user, nil
}

// decodeService maps a Service collection record onto a ServiceListing.
func decodeService(rec store.Record) (model.ServiceListing, error) {
	var listing model.ServiceListing
	if err := decodeRecord(rec, &listing); err != nil {
		return model.ServiceListing{}, err
	}
	listing.ID = rec.ID
	return listing, nil
}

// decodeRecord goes through JSON so documents written with extra or missing
// fields still map onto the model without reflection of our own.
func decodeRecord(rec store.Record, out any) error {
	raw, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", rec.ID, err)
	}
	return nil
}
