package models

// Contract is a contractor agreement. PhoneNumber travels encrypted with the
// deployment field cipher; services decrypt it for display.
type Contract struct {
	ID                         int64     `json:"id"`
	AffiliationID              int64     `json:"affiliationId"`
	Name                       string    `json:"name"`
	PhoneNumber                string    `json:"phoneNumber"`
	BusinessRegistrationNumber string    `json:"businessRegistrationNumber"`
	ContractorCode             string    `json:"contractorCode,omitempty"`
	Region                     string    `json:"region,omitempty"`
	DeliveryAppID              string    `json:"deliveryAppId,omitempty"`
	VehicleNumber              string    `json:"vehicleNumber,omitempty"`
	CreatedAt                  Timestamp `json:"createdAt"`
	UpdatedAt                  Timestamp `json:"updatedAt"`
}

// ContractRequest is the body of contract create and update calls.
// AffiliationCode is required on create only.
type ContractRequest struct {
	Name                       string `json:"name"`
	PhoneNumber                string `json:"phoneNumber"`
	BusinessRegistrationNumber string `json:"businessRegistrationNumber"`
	AffiliationCode            string `json:"affiliationCode,omitempty"`
	ContractorCode             string `json:"contractorCode,omitempty"`
	Region                     string `json:"region,omitempty"`
	DeliveryAppID              string `json:"deliveryAppId,omitempty"`
	VehicleNumber              string `json:"vehicleNumber,omitempty"`
}
