package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, PageTitle, "Team")
	message.SetString(lang, PageSubtitle, "Manage users of your admin")

	message.SetString(lang, ColumnName, "Name")
	message.SetString(lang, ColumnEmail, "Email")
	message.SetString(lang, ColumnRole, "Role")

	message.SetString(lang, ActionInviteUsers, "Invite Users")
	message.SetString(lang, ActionEditUser, "Edit User")
	message.SetString(lang, ActionRemoveUser, "Remove User")
	message.SetString(lang, ActionResendInvite, "Resend Invitation")
	message.SetString(lang, ActionRemoveInvite, "Remove Invitation")
	message.SetString(lang, ActionRefresh, "Refresh")
	message.SetString(lang, ActionCancel, "Cancel")
	message.SetString(lang, ActionSave, "Save")
	message.SetString(lang, ActionConfirmDelete, "Yes, remove")
	message.SetString(lang, ActionSendInvite, "Invite")
	message.SetString(lang, ActionDismiss, "Dismiss")
	message.SetString(lang, ActionNextPage, "Next")
	message.SetString(lang, ActionPrevPage, "Previous")

	message.SetString(lang, BadgeExpired, "Expired")

	_ = message.Set(lang, FooterMembers, plural.Selectf(1, "%d",
		plural.One, "%d member",
		plural.Other, "%d members",
	))
	message.SetString(lang, PageRange, "Offset %d, %d per page")

	message.SetString(lang, EditTitle, "Edit User")
	message.SetString(lang, DeleteTitle, "Remove User")
	message.SetString(lang, DeleteBody, "%s will lose access to the admin. This cannot be undone.")
	message.SetString(lang, InviteTitle, "Invite Users")
	message.SetString(lang, FieldFirst, "First name")
	message.SetString(lang, FieldLast, "Last name")
	message.SetString(lang, FieldEmail, "Email")
	message.SetString(lang, FieldRole, "Role")
	message.SetString(lang, RoleMember, "Member")
	message.SetString(lang, RoleAdmin, "Admin")
	message.SetString(lang, RoleDeveloper, "Developer")

	message.SetString(lang, NoticeInviteResent, "Invitation link has been resent")
	message.SetString(lang, NoticeInviteCreated, "Invitation sent to %s")
	message.SetString(lang, NoticeInviteRemoveUnsup, "Removing invitations is not supported yet")

	message.SetString(lang, FailureLoadUsers, "Could not load users: %s")
	message.SetString(lang, FailureLoadInvites, "Could not load invitations: %s")
	message.SetString(lang, FailureDeleteUser, "Could not remove user: %s")
	message.SetString(lang, FailureUpdateUser, "Could not update user: %s")
	message.SetString(lang, FailureResendInvite, "Could not resend invitation: %s")
	message.SetString(lang, FailureCreateInvite, "Could not send invitation: %s")

	message.SetString(lang, RejectedConflict, "That action is not available right now")
	message.SetString(lang, RejectedNotFound, "That entry is no longer in the list")
	message.SetString(lang, RejectedInvalid, "Please check the form and try again")
}
