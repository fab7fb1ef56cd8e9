package domain

// DemoUser is a static demo identity. Instances live in the fixture
// catalogue for the whole process lifetime and are never mutated.
type DemoUser struct {
	Email      string      `json:"email"`
	Password   string      `json:"-"` // plaintext, demo fixtures only
	Name       string      `json:"name"`
	Role       Role        `json:"role"`
	PartnerID  string      `json:"partner_id,omitempty"`  // set iff Role == RolePartner
	DriverInfo *DriverInfo `json:"driver_info,omitempty"` // set iff Role == RoleDriver
}

// Partner is the business profile behind a partner identity, looked up
// by id in the partner directory.
type Partner struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Address  string  `json:"address"`
	City     string  `json:"city"`
	Rating   float64 `json:"rating"`
}

// DriverInfo is the delivery profile embedded on a driver identity.
type DriverInfo struct {
	VehicleType  string  `json:"vehicle_type"`
	LicensePlate string  `json:"license_plate"`
	Rating       float64 `json:"rating"`
	Online       bool    `json:"online"`
}
