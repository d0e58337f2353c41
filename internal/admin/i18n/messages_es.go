package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	message.SetString(lang, PageTitle, "Equipo")
	message.SetString(lang, PageSubtitle, "Gestiona los usuarios de tu panel")

	message.SetString(lang, ColumnName, "Nombre")
	message.SetString(lang, ColumnEmail, "Correo")
	message.SetString(lang, ColumnRole, "Rol")

	message.SetString(lang, ActionInviteUsers, "Invitar usuarios")
	message.SetString(lang, ActionEditUser, "Editar usuario")
	message.SetString(lang, ActionRemoveUser, "Eliminar usuario")
	message.SetString(lang, ActionResendInvite, "Reenviar invitación")
	message.SetString(lang, ActionRemoveInvite, "Eliminar invitación")
	message.SetString(lang, ActionRefresh, "Actualizar")
	message.SetString(lang, ActionCancel, "Cancelar")
	message.SetString(lang, ActionSave, "Guardar")
	message.SetString(lang, ActionConfirmDelete, "Sí, eliminar")
	message.SetString(lang, ActionSendInvite, "Invitar")
	message.SetString(lang, ActionDismiss, "Cerrar")
	message.SetString(lang, ActionNextPage, "Siguiente")
	message.SetString(lang, ActionPrevPage, "Anterior")

	message.SetString(lang, BadgeExpired, "Caducada")

	_ = message.Set(lang, FooterMembers, plural.Selectf(1, "%d",
		plural.One, "%d miembro",
		plural.Other, "%d miembros",
	))
	message.SetString(lang, PageRange, "Desplazamiento %d, %d por página")

	message.SetString(lang, EditTitle, "Editar usuario")
	message.SetString(lang, DeleteTitle, "Eliminar usuario")
	message.SetString(lang, DeleteBody, "%s perderá el acceso al panel. No se puede deshacer.")
	message.SetString(lang, InviteTitle, "Invitar usuarios")
	message.SetString(lang, FieldFirst, "Nombre")
	message.SetString(lang, FieldLast, "Apellido")
	message.SetString(lang, FieldEmail, "Correo")
	message.SetString(lang, FieldRole, "Rol")
	message.SetString(lang, RoleMember, "Miembro")
	message.SetString(lang, RoleAdmin, "Administrador")
	message.SetString(lang, RoleDeveloper, "Desarrollador")

	message.SetString(lang, NoticeInviteResent, "Se ha reenviado el enlace de invitación")
	message.SetString(lang, NoticeInviteCreated, "Invitación enviada a %s")
	message.SetString(lang, NoticeInviteRemoveUnsup, "Todavía no se pueden eliminar invitaciones")

	message.SetString(lang, FailureLoadUsers, "No se pudieron cargar los usuarios: %s")
	message.SetString(lang, FailureLoadInvites, "No se pudieron cargar las invitaciones: %s")
	message.SetString(lang, FailureDeleteUser, "No se pudo eliminar el usuario: %s")
	message.SetString(lang, FailureUpdateUser, "No se pudo actualizar el usuario: %s")
	message.SetString(lang, FailureResendInvite, "No se pudo reenviar la invitación: %s")
	message.SetString(lang, FailureCreateInvite, "No se pudo enviar la invitación: %s")

	message.SetString(lang, RejectedConflict, "Esa acción no está disponible ahora")
	message.SetString(lang, RejectedNotFound, "Esa entrada ya no está en la lista")
	message.SetString(lang, RejectedInvalid, "Revisa el formulario e inténtalo de nuevo")
}
