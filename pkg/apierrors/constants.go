package apierrors

const (
	MsgInternal            = "internalError"
	MsgInvalidPayload      = "invalidPayload"
	MsgUnauthorized        = "unauthorized"
	MsgInvalidCredentials  = "invalidCredentials"
	MsgForbidden           = "forbidden"
	MsgEmailTaken          = "emailTaken"
	MsgNameTaken           = "nameTaken"
	MsgCannotDeleteSelf    = "cannotDeleteSelf"
	MsgUserNotFound        = "userNotFound"
	MsgBoardNotFound       = "boardNotFound"
	MsgTaskNotFound        = "taskNotFound"
	MsgAttachmentNotFound  = "attachmentNotFound"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgInvalidBoardPayload = "invalidBoardPayload"
	MsgInvalidUserPayload  = "invalidUserPayload"
	MsgInvalidStatus       = "invalidStatus"
	MsgInvalidComment      = "invalidComment"
	MsgInvalidMonth        = "invalidMonth"
	MsgAttachmentTooLarge  = "attachmentTooLarge"
)
