package models

// DashboardStats are the admin dashboard figures. Each field comes from an
// independent point-in-time query; under concurrent writes the three numbers
// are not guaranteed mutually consistent.
type DashboardStats struct {
	TodayCount   int64   `json:"todayCount"`
	TodayRevenue float64 `json:"todayRevenue"`
	NoShows30d   int64   `json:"noShows30d"`
}

// StoreInfo holds the table row counts shown on the admin database screen.
type StoreInfo struct {
	Accounts     int64 `json:"accounts"`
	Patients     int64 `json:"patients"`
	Appointments int64 `json:"appointments"`
}
