package model

// ServiceListing represents an entry of the Service collection. The JSON field
// names match the persisted documents created by the mobile clients.
type ServiceListing struct {
	ID          string  `json:"id"`
	ServiceName string  `json:"ServiceName"`
	Price       float64 `json:"Price"`
	Creator     string  `json:"Creator"`
}

// UpsertServiceRequest is used for creating and updating a service listing.
// Updates are full-record: last writer wins, no version token.
type UpsertServiceRequest struct {
	ServiceName string  `json:"ServiceName" binding:"required"`
	Price       float64 `json:"Price" binding:"required,gt=0"`
	Creator     string  `json:"Creator" binding:"required"`
}
