package constants

// Tipe aktivitas untuk activity_logs (string enum terbuka).
const (
	ActivityLogin                 = "login"
	ActivityLogout                = "logout"
	ActivityUserCreated           = "user_created"
	ActivityUserUpdated           = "user_updated"
	ActivityUserDeleted           = "user_deleted"
	ActivityRegistrationSubmitted = "registration_submitted"
	ActivityRegistrationApproved  = "registration_approved"
	ActivityRegistrationRejected  = "registration_rejected"
	ActivityAttendanceMarked      = "attendance_marked"
	ActivityDivisionCreated       = "division_created"
	ActivityDivisionUpdated       = "division_updated"
	ActivityDivisionDeleted       = "division_deleted"
	ActivityDivisionSlotsReset    = "division_slots_reset"
)
