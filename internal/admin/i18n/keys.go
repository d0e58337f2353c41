package i18n

// Message keys.
const (
	PageTitle    = "team.title"
	PageSubtitle = "team.subtitle"

	ColumnName  = "team.column.name"
	ColumnEmail = "team.column.email"
	ColumnRole  = "team.column.role"

	ActionInviteUsers   = "team.action.invite_users"
	ActionEditUser      = "team.action.edit_user"
	ActionRemoveUser    = "team.action.remove_user"
	ActionResendInvite  = "team.action.resend_invite"
	ActionRemoveInvite  = "team.action.remove_invite"
	ActionRefresh       = "team.action.refresh"
	ActionCancel        = "team.action.cancel"
	ActionSave          = "team.action.save"
	ActionConfirmDelete = "team.action.confirm_delete"
	ActionSendInvite    = "team.action.send_invite"
	ActionDismiss       = "team.action.dismiss"
	ActionNextPage      = "team.action.next_page"
	ActionPrevPage      = "team.action.prev_page"

	BadgeExpired = "team.badge.expired"

	FooterMembers = "team.footer.members"
	PageRange     = "team.page.range"

	EditTitle     = "team.edit.title"
	DeleteTitle   = "team.delete.title"
	DeleteBody    = "team.delete.body"
	InviteTitle   = "team.invite.title"
	FieldFirst    = "team.field.first_name"
	FieldLast     = "team.field.last_name"
	FieldEmail    = "team.field.email"
	FieldRole     = "team.field.role"
	RoleMember    = "team.role.member"
	RoleAdmin     = "team.role.admin"
	RoleDeveloper = "team.role.developer"

	NoticeInviteResent      = "team.notice.invite_resent"
	NoticeInviteCreated     = "team.notice.invite_created"
	NoticeInviteRemoveUnsup = "team.notice.invite_remove_unsupported"

	FailureLoadUsers    = "team.failure.load_users"
	FailureLoadInvites  = "team.failure.load_invites"
	FailureDeleteUser   = "team.failure.delete_user"
	FailureUpdateUser   = "team.failure.update_user"
	FailureResendInvite = "team.failure.resend_invite"
	FailureCreateInvite = "team.failure.create_invite"

	RejectedConflict = "team.rejected.conflict"
	RejectedNotFound = "team.rejected.not_found"
	RejectedInvalid  = "team.rejected.invalid"
)
