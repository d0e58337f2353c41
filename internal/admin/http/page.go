package http

import (
	"embed"
	"html/template"
	"net/url"

	"github.com/a-h/templ"
	"github.com/aussiebroadwan/teamdesk/internal/admin/domain"
	"github.com/aussiebroadwan/teamdesk/internal/admin/i18n"
	"github.com/aussiebroadwan/teamdesk/internal/admin/team"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(
	template.New("team").
		Funcs(template.FuncMap{
			"t":          func(string, ...any) string { return "" },
			"actionPath": actionPath,
		}).
		ParseFS(templateFS, "templates/*.html"),
)

var failureKeys = map[team.Op]string{
	team.OpListUsers:    i18n.FailureLoadUsers,
	team.OpListInvites:  i18n.FailureLoadInvites,
	team.OpDeleteUser:   i18n.FailureDeleteUser,
	team.OpUpdateUser:   i18n.FailureUpdateUser,
	team.OpResendInvite: i18n.FailureResendInvite,
	team.OpCreateInvite: i18n.FailureCreateInvite,
}

var rejectedKeys = map[string]string{
	rejectConflict: i18n.RejectedConflict,
	rejectNotFound: i18n.RejectedNotFound,
	rejectInvalid:  i18n.RejectedInvalid,
}

type noticeView struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type roleOption struct {
	Value string
	Label string
}

// pageData is what the team template renders.
type pageData struct {
	Lang       string
	ViewID     string
	Rows       []team.Row
	Footer     string
	PageRange  string
	Overlay    string
	Selected   *domain.User
	Submitting bool
	Failure    string
	Rejected   string
	Notices    []noticeView
	Roles      []roleOption
	CanWrite   bool
}

func buildPage(s team.State, viewID string, tag language.Tag, p *message.Printer, now timeSource, canWrite bool, rejected string) pageData {
	data := pageData{
		Lang:       tag.String(),
		ViewID:     viewID,
		Rows:       team.BuildRows(s.Users, s.Invites, now()),
		Footer:     i18n.MemberCount(p, team.MemberCount(s.Users)),
		PageRange:  p.Sprintf(i18n.PageRange, s.Page.Offset, s.Page.Limit),
		Overlay:    s.Overlay.String(),
		Selected:   s.SelectedUser,
		Submitting: s.Submitting,
		Notices:    noticeViews(s.Notices, p),
		Roles: []roleOption{
			{Value: "member", Label: p.Sprintf(i18n.RoleMember)},
			{Value: "admin", Label: p.Sprintf(i18n.RoleAdmin)},
			{Value: "developer", Label: p.Sprintf(i18n.RoleDeveloper)},
		},
		CanWrite: canWrite,
	}

	if s.Failure != nil {
		data.Failure = p.Sprintf(failureKeys[s.Failure.Op], s.Failure.Message)
	}
	if key, ok := rejectedKeys[rejected]; ok {
		data.Rejected = p.Sprintf(key)
	}

	return data
}

func noticeViews(notices []domain.Notice, p *message.Printer) []noticeView {
	out := make([]noticeView, 0, len(notices))
	for _, n := range notices {
		out = append(out, noticeView{
			ID:      n.ID.String(),
			Kind:    string(n.Kind),
			Message: p.Sprintf(n.Key, n.Args...),
		})
	}
	return out
}

// pageComponent renders the team page with a printer bound to the request
// language.
func pageComponent(data pageData, p *message.Printer) (templ.Component, error) {
	tmpl, err := pageTemplates.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(template.FuncMap{
		"t": func(key string, args ...any) string { return p.Sprintf(key, args...) },
	})
	return templ.FromGoHTML(tmpl.Lookup("team"), data), nil
}

func actionPath(r team.Row, a team.RowAction) string {
	collection := "users"
	if r.Kind == team.RowInvite {
		collection = "invites"
	}
	return "/team/" + collection + "/" + url.PathEscape(r.ID) + "/" + a.Name
}
