package models

// Departments is the fixed county department list. The dashboard department
// summary reports one row per entry, in this order.
var Departments = []string{
	"Assessor", "Communications", "Community Development", "County Manager", "County Treasurer",
	"Detention Center", "Fire Department", "Fire Rescue", "Flood Commission", "Human Resources",
	"Information Technology", "Public Health & Assistance", "Purchasing Department",
	"Road Department", "Sheriff",
}
