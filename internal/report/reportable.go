package report

// Reportable is anything that can produce report output.
type Reportable interface {
	// Generate returns the report payload. It never fails and has no side effects.
	Generate() string
}

// Base report payloads.
const (
	salesReportData = "Sales Report Data"
	userReportData  = "User Report Data"
)

// SalesReport is the base report for sales data.
type SalesReport struct{}

// Generate returns the sales report payload.
func (SalesReport) Generate() string {
	return salesReportData
}

// UserReport is the base report for user data.
type UserReport struct{}

// Generate returns the user report payload.
func (UserReport) Generate() string {
	return userReportData
}
