package apierrors

const (
	MsgInvalidTaskPayload   = "invalidTaskPayload"
	MsgInvalidAuthPayload   = "invalidAuthPayload"
	MsgInvalidViewMode      = "invalidViewMode"
	MsgEmptyField           = "emptyField"
	MsgDueDateInPast        = "dueDateInPast"
	MsgPasswordMismatch     = "passwordMismatch"
	MsgNoProfileChanges     = "noProfileChanges"
	MsgAlreadyAuthenticated = "alreadyAuthenticated"
	MsgUnauthenticated      = "unauthenticated"
	MsgTaskNotFound         = "taskNotFound"
	MsgFailLoadTasks        = "failLoadTasks"
	MsgFailSubmitTask       = "failSubmitTask"
	MsgFailUpdateStatus     = "failUpdateStatus"
	MsgFailDeleteTask       = "failDeleteTask"
	MsgFailAuth             = "failAuth"
	MsgFailUpdateProfile    = "failUpdateProfile"
)
