package fixtures

import "github.com/mimisupply/demo-auth/internal/core/domain"

// The demo catalogue. Order matters: the first user of each role is the
// quick-login representative for that role. Admin deliberately has no
// fixture, so admin quick-login stays unsupported.

func demoUsers() []domain.DemoUser {
	return []domain.DemoUser{
		{
			Email:    "customer@mimisupply.com",
			Password: "demo1234",
			Name:     "Clara Weber",
			Role:     domain.RoleCustomer,
		},
		{
			Email:    "customer2@mimisupply.com",
			Password: "demo1234",
			Name:     "Jonas Becker",
			Role:     domain.RoleCustomer,
		},
		{
			Email:     "partner@mimisupply.com",
			Password:  "demo1234",
			Name:      "Mimi Nguyen",
			Role:      domain.RolePartner,
			PartnerID: "partner_mimi_market",
		},
		{
			Email:     "partner2@mimisupply.com",
			Password:  "demo1234",
			Name:      "Luca Moretti",
			Role:      domain.RolePartner,
			PartnerID: "partner_bella_cucina",
		},
		{
			Email:    "driver@mimisupply.com",
			Password: "demo1234",
			Name:     "Sam Okafor",
			Role:     domain.RoleDriver,
			DriverInfo: &domain.DriverInfo{
				VehicleType:  "e-bike",
				LicensePlate: "B-MS 101",
				Rating:       4.9,
				Online:       true,
			},
		},
		{
			Email:    "driver2@mimisupply.com",
			Password: "demo1234",
			Name:     "Aylin Kaya",
			Role:     domain.RoleDriver,
			DriverInfo: &domain.DriverInfo{
				VehicleType:  "scooter",
				LicensePlate: "B-MS 202",
				Rating:       4.7,
				Online:       false,
			},
		},
	}
}

func demoPartners() map[string]domain.Partner {
	return map[string]domain.Partner{
		"partner_mimi_market": {
			ID:       "partner_mimi_market",
			Name:     "Mimi Market",
			Category: "groceries",
			Address:  "Invalidenstr. 12",
			City:     "Berlin",
			Rating:   4.8,
		},
		"partner_bella_cucina": {
			ID:       "partner_bella_cucina",
			Name:     "Bella Cucina",
			Category: "restaurant",
			Address:  "Torstr. 98",
			City:     "Berlin",
			Rating:   4.6,
		},
	}
}
