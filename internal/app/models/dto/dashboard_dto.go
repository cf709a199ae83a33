package dto

// DashboardStats carries the headline entity counts.
type DashboardStats struct {
	TotalStudents    int64 `json:"totalStudents" example:"480"`
	ActiveStudents   int64 `json:"activeStudents" example:"455"`
	TotalDepartments int64 `json:"totalDepartments" example:"6"`
	TotalCourses     int64 `json:"totalCourses" example:"52"`
	TotalEnrollments int64 `json:"totalEnrollments" example:"1930"`
}

// DepartmentStudentCount is one bar of the department-wise chart.
type DepartmentStudentCount struct {
	DepartmentID   int64  `json:"departmentId" example:"1"`
	DepartmentName string `json:"departmentName" example:"Computer Science"`
	StudentCount   int64  `json:"studentCount" example:"120"`
}

// GPABucket is one bucket of the GPA distribution.
type GPABucket struct {
	Label string `json:"label" example:"3.0-3.5"`
	Count int64  `json:"count" example:"87"`
}

// MonthlyAdmissions is one point of the admission trend.
type MonthlyAdmissions struct {
	Month string `json:"month" example:"2026-03"`
	Count int64  `json:"count" example:"14"`
}

// TodayAttendance summarizes attendance recorded today.
type TodayAttendance struct {
	Present int64 `json:"present" example:"310"`
	Absent  int64 `json:"absent" example:"22"`
}

// DashboardOverview is the full dashboard payload.
type DashboardOverview struct {
	Stats              DashboardStats           `json:"stats"`
	RecentStudents     []StudentResponse        `json:"recentStudents"`
	DepartmentCounts   []DepartmentStudentCount `json:"departmentCounts"`
	GPADistribution    []GPABucket              `json:"gpaDistribution"`
	TodayAttendance    TodayAttendance          `json:"todayAttendance"`
	PendingFees        FeeSummary               `json:"pendingFees"`
	AdmissionTrend     []MonthlyAdmissions      `json:"admissionTrend"`
}

// AttendanceChartPoint is one day of the attendance chart.
type AttendanceChartPoint struct {
	Date    string `json:"date" example:"2026-08-25"`
	Present int64  `json:"present" example:"310"`
	Absent  int64  `json:"absent" example:"22"`
	Late    int64  `json:"late" example:"8"`
}

// AttendanceChartResponse is the attendance chart payload.
type AttendanceChartResponse struct {
	Days []AttendanceChartPoint `json:"days"`
}
